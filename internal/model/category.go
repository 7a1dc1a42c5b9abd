package model

import "strings"

// Category groups tasks for filtering.
type Category string

const (
	CategoryGeneral  Category = "General"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryStudy    Category = "Study"
	CategoryUrgent   Category = "Urgent"

	// CategoryAll is a filter value only; no task carries it.
	CategoryAll Category = "All"
)

// Categories lists every task category in display order.
var Categories = []Category{
	CategoryGeneral,
	CategoryWork,
	CategoryPersonal,
	CategoryStudy,
	CategoryUrgent,
}

// FilterCategories lists the filter choices, "All" first.
var FilterCategories = append([]Category{CategoryAll}, Categories...)

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a real task category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryWork, CategoryPersonal, CategoryStudy, CategoryUrgent:
		return true
	}
	return false
}

// ParseCategory matches s case-insensitively against the task categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

// ParseCategoryFilter is ParseCategory that also accepts "All". Empty input
// means "All".
func ParseCategoryFilter(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, true
	}
	return ParseCategory(s)
}
