package tui

import (
	"github.com/charmbracelet/lipgloss"

	"task-board/internal/model"
)

type palette struct {
	fg       lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	selectBg lipgloss.Color
	high     lipgloss.Color
	medium   lipgloss.Color
	low      lipgloss.Color
	overdue  lipgloss.Color
}

var (
	darkPalette = palette{
		fg:       lipgloss.Color("#E2E8F0"),
		muted:    lipgloss.Color("#718096"),
		accent:   lipgloss.Color("#63B3ED"),
		selectBg: lipgloss.Color("#2D3748"),
		high:     lipgloss.Color("#F56565"),
		medium:   lipgloss.Color("#ECC94B"),
		low:      lipgloss.Color("#48BB78"),
		overdue:  lipgloss.Color("#FC8181"),
	}
	lightPalette = palette{
		fg:       lipgloss.Color("#1A202C"),
		muted:    lipgloss.Color("#A0AEC0"),
		accent:   lipgloss.Color("#3182CE"),
		selectBg: lipgloss.Color("#EDF2F7"),
		high:     lipgloss.Color("#C53030"),
		medium:   lipgloss.Color("#B7791F"),
		low:      lipgloss.Color("#2F855A"),
		overdue:  lipgloss.Color("#E53E3E"),
	}
)

type styles struct {
	title        lipgloss.Style
	muted        lipgloss.Style
	filter       lipgloss.Style
	filterActive lipgloss.Style
	row          lipgloss.Style
	selected     lipgloss.Style
	overdue      lipgloss.Style
	high         lipgloss.Style
	medium       lipgloss.Style
	low          lipgloss.Style
	label        lipgloss.Style
	labelFocused lipgloss.Style
	status       lipgloss.Style
	statusErr    lipgloss.Style
	form         lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		muted:        lipgloss.NewStyle().Foreground(p.muted),
		filter:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		filterActive: lipgloss.NewStyle().Bold(true).Foreground(p.accent).Underline(true).Padding(0, 1),
		row:          lipgloss.NewStyle().Foreground(p.fg),
		selected:     lipgloss.NewStyle().Foreground(p.fg).Background(p.selectBg).Bold(true),
		overdue:      lipgloss.NewStyle().Foreground(p.overdue).Bold(true),
		high:         badge.Foreground(p.high),
		medium:       badge.Foreground(p.medium),
		low:          badge.Foreground(p.low),
		label:        lipgloss.NewStyle().Foreground(p.muted).Width(10),
		labelFocused: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Width(10),
		status:       lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		statusErr:    lipgloss.NewStyle().Foreground(p.overdue),
		form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1).
			MarginBottom(1),
	}
}

// priority returns the badge style matching model.Priority.Color.
func (s styles) priority(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return s.high
	case model.PriorityMedium:
		return s.medium
	case model.PriorityLow:
		return s.low
	}
	return s.muted
}
