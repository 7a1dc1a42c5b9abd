// Package tui is the terminal front end of the task board.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-board/internal/model"
	"task-board/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

type field int

const (
	fieldText field = iota
	fieldDue
	fieldCategory
	fieldPriority
	fieldCount
)

// Model is the bubbletea model for a single board.
type Model struct {
	ctx context.Context
	uc  task.UseCase
	sc  model.Scope

	// Board
	tasks  []task.TaskView
	total  int
	filter model.Category
	cursor int

	// Add form
	mode     mode
	focus    field
	text     textinput.Model
	due      textinput.Model
	category int // index into model.Categories
	priority int // index into model.Priorities

	// UI state
	dark      bool
	styles    styles
	status    string
	statusErr bool
	width     int
}

// New builds a Model bound to the board of sc and loads it.
func New(ctx context.Context, uc task.UseCase, sc model.Scope) Model {
	text := textinput.New()
	text.Placeholder = "What needs to be done?"
	text.CharLimit = 256
	text.Width = 40

	due := textinput.New()
	due.Placeholder = "2024-05-01, tomorrow, in 3 days"
	due.CharLimit = 64
	due.Width = 40

	m := Model{
		ctx:      ctx,
		uc:       uc,
		sc:       sc,
		filter:   model.CategoryAll,
		text:     text,
		due:      due,
		priority: indexOf(model.Priorities, model.PriorityMedium),
		dark:     true,
		styles:   newStyles(true),
		status:   "Press 'a' to add a task.",
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, uc task.UseCase, sc model.Scope) error {
	program := tea.NewProgram(New(ctx, uc, sc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the current view from the board.
func (m *Model) refresh() {
	out, err := m.uc.List(m.ctx, m.sc, task.ListInput{Category: string(m.filter)})
	if err != nil {
		m.fail("load failed", err)
		return
	}
	m.tasks = out.Tasks
	m.total = out.Total
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

// selectID moves the cursor onto the task with id, if it is in view.
func (m *Model) selectID(id int64) {
	for i, tv := range m.tasks {
		if tv.Task.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) fail(action string, err error) {
	m.status = action + ": " + err.Error()
	m.statusErr = true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func indexOf[T comparable](items []T, v T) int {
	for i, it := range items {
		if it == v {
			return i
		}
	}
	return 0
}
