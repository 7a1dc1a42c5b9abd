package task

import (
	"fmt"
	"time"

	"task-board/pkg/datemath"
)

type DueKind int

const (
	DueNone DueKind = iota
	DueOverdue
	DueToday
	DueTomorrow
	DueInDays
)

func (k DueKind) String() string {
	switch k {
	case DueOverdue:
		return "overdue"
	case DueToday:
		return "due_today"
	case DueTomorrow:
		return "due_tomorrow"
	case DueInDays:
		return "due_in_days"
	}
	return "none"
}

// DueStatus is the day-granularity label of a due date relative to today.
// Days is the signed day difference (due - today) and is only meaningful
// when Kind != DueNone.
type DueStatus struct {
	Kind DueKind
	Days int
}

// DueStatusFromDays classifies a day difference.
func DueStatusFromDays(days int) DueStatus {
	switch {
	case days < 0:
		return DueStatus{Kind: DueOverdue, Days: days}
	case days == 0:
		return DueStatus{Kind: DueToday}
	case days == 1:
		return DueStatus{Kind: DueTomorrow, Days: 1}
	}
	return DueStatus{Kind: DueInDays, Days: days}
}

// DueStatusOf compares the calendar dates of today and due, each read in
// its own location. Callers convert both to the board timezone first.
func DueStatusOf(today, due time.Time) DueStatus {
	return DueStatusFromDays(datemath.DaysBetween(today, due))
}

func (s DueStatus) String() string {
	switch s.Kind {
	case DueOverdue:
		return "Overdue"
	case DueToday:
		return "Due Today"
	case DueTomorrow:
		return "Due Tomorrow"
	case DueInDays:
		return fmt.Sprintf("Due in %d days", s.Days)
	}
	return ""
}

func (s DueStatus) IsOverdue() bool {
	return s.Kind == DueOverdue
}
