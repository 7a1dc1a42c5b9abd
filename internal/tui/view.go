package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-board/internal/model"
	"task-board/internal/task"
	"task-board/pkg/response"
)

const helpLine = "a add · ↑/↓ k/j move · K/J reorder · d delete · 1-6 filter · t theme · q quit"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Task Board"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	}

	b.WriteString(m.renderTaskList())
	b.WriteString("\n")

	if m.status != "" {
		st := m.styles.status
		if m.statusErr {
			st = m.styles.statusErr
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.muted.Render(helpLine))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(model.FilterCategories))
	for i, c := range model.FilterCategories {
		label := fmt.Sprintf("%d %s", i+1, c)
		if c == m.filter {
			parts = append(parts, m.styles.filterActive.Render(label))
			continue
		}
		parts = append(parts, m.styles.filter.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderForm() string {
	rows := []string{
		m.formRow(fieldText, "Task", m.text.View()),
		m.formRow(fieldDue, "Due", m.due.View()),
		m.formRow(fieldCategory, "Category", fmt.Sprintf("‹ %s ›", model.Categories[m.category])),
		m.formRow(fieldPriority, "Priority", m.styles.priority(model.Priorities[m.priority]).Render(fmt.Sprintf("‹ %s ›", model.Priorities[m.priority]))),
	}
	return m.styles.form.Render(strings.Join(rows, "\n"))
}

func (m Model) formRow(f field, label, value string) string {
	st := m.styles.label
	if m.focus == f {
		st = m.styles.labelFocused
	}
	return st.Render(label) + value
}

func (m Model) renderTaskList() string {
	if len(m.tasks) == 0 {
		if m.filter != model.CategoryAll && m.total > 0 {
			return m.styles.muted.Render(fmt.Sprintf("No %s tasks (%d on the board)", m.filter, m.total))
		}
		return m.styles.muted.Render("No tasks yet")
	}

	var b strings.Builder
	for i, tv := range m.tasks {
		b.WriteString(m.renderRow(tv, i == m.cursor))
		b.WriteString("\n")
	}
	if m.filter != model.CategoryAll {
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("%d of %d tasks", len(m.tasks), m.total)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(tv task.TaskView, selected bool) string {
	t := tv.Task

	marker := "  "
	if selected {
		marker = "› "
	}

	text := t.Text
	switch {
	case tv.DueStatus.IsOverdue():
		text = m.styles.overdue.Render(text)
	case selected:
		text = m.styles.selected.Render(text)
	default:
		text = m.styles.row.Render(text)
	}

	parts := []string{
		marker + m.styles.priority(t.Priority).Render(string(t.Priority)),
		text,
		m.styles.muted.Render("#" + string(t.Category)),
	}
	if t.HasDueDate() {
		due := t.DueDate.Format(response.DateFormat) + " · " + tv.DueStatus.String()
		if tv.DueStatus.IsOverdue() {
			parts = append(parts, m.styles.overdue.Render(due))
		} else {
			parts = append(parts, m.styles.muted.Render(due))
		}
	}
	return strings.Join(parts, " ")
}
