package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"task-board/internal/model"
	"task-board/internal/task"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.text.Width = max(msg.Width-16, 10)
		m.due.Width = m.text.Width
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "a":
		m.mode = modeAdd
		m.setStatus("tab: next field, ←/→: change category/priority, enter: add, esc: cancel")
		return m, m.focusField(fieldText)
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case "K":
		m.move(-1)
	case "J":
		m.move(1)
	case "d":
		m.deleteSelected()
	case "t":
		m.dark = !m.dark
		m.styles = newStyles(m.dark)
	case "1", "2", "3", "4", "5", "6":
		n, _ := strconv.Atoi(key)
		m.filter = model.FilterCategories[n-1]
		m.cursor = 0
		m.refresh()
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetForm()
		m.mode = modeList
		m.setStatus("Cancelled")
		return m, nil
	case "tab":
		return m, m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab":
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		m.submit()
		return m, nil
	case "left", "right":
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		switch m.focus {
		case fieldCategory:
			m.category = cycle(m.category, step, len(model.Categories))
			return m, nil
		case fieldPriority:
			m.priority = cycle(m.priority, step, len(model.Priorities))
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldDue:
		m.due, cmd = m.due.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusField(f field) tea.Cmd {
	m.focus = f
	m.text.Blur()
	m.due.Blur()
	switch f {
	case fieldText:
		return m.text.Focus()
	case fieldDue:
		return m.due.Focus()
	}
	return nil
}

func (m *Model) resetForm() {
	m.text.SetValue("")
	m.due.SetValue("")
	m.text.Blur()
	m.due.Blur()
	m.focus = fieldText
}

func (m *Model) submit() {
	out, err := m.uc.Add(m.ctx, m.sc, task.AddTaskInput{
		Text:     m.text.Value(),
		Category: string(model.Categories[m.category]),
		Priority: string(model.Priorities[m.priority]),
		DueDate:  m.due.Value(),
	})
	if err != nil {
		m.fail("add failed", err)
		return
	}
	if !out.Added {
		m.setStatus("Description cannot be empty")
		return
	}

	m.resetForm()
	m.mode = modeList
	m.refresh()
	m.selectID(out.Task.ID)
	m.setStatus(fmt.Sprintf("Added %q", out.Task.Text))
}

// move shifts the selected task by delta positions within the current view.
// The board re-sorts afterwards, so only tasks with equal sort keys change
// places.
func (m *Model) move(delta int) {
	from := m.cursor
	to := from + delta
	if len(m.tasks) == 0 || to < 0 || to >= len(m.tasks) {
		return
	}
	id := m.tasks[from].Task.ID

	_, err := m.uc.Reorder(m.ctx, m.sc, task.ReorderInput{
		From:     from,
		To:       to,
		Category: string(m.filter),
	})
	if err != nil {
		m.fail("reorder failed", err)
		return
	}

	m.refresh()
	m.selectID(id)
	if m.cursor == from {
		m.setStatus("Kept in place: order follows due date and priority")
		return
	}
	m.setStatus("Moved")
}

func (m *Model) deleteSelected() {
	if len(m.tasks) == 0 {
		return
	}
	selected := m.tasks[m.cursor].Task

	out, err := m.uc.Delete(m.ctx, m.sc, selected.ID)
	if err != nil {
		m.fail("delete failed", err)
		return
	}
	m.refresh()
	if out.Deleted {
		m.setStatus(fmt.Sprintf("Deleted %q", selected.Text))
	}
}

func cycle(i, step, n int) int {
	return ((i+step)%n + n) % n
}
