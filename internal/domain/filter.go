package domain

import (
	"sort"
	"strings"

	apperrors "todo-tracker/internal/errors"
)

// Predicate selects tasks.
type Predicate func(Task) bool

// All matches every task.
func All(Task) bool { return true }

// Pending matches tasks that are not completed.
func Pending(t Task) bool { return !t.Completed }

// Completed matches completed tasks.
func Completed(t Task) bool { return t.Completed }

// Filter names one of the list views.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Filters lists the views in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

// ParseFilter maps a view name to a Filter. Matching ignores case and
// surrounding whitespace; an empty name selects all tasks.
func ParseFilter(name string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(name))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", apperrors.NewInvalidInputError("filter", name, "must be one of: all, pending, completed")
	}
}

// Predicate returns the predicate the filter applies.
func (f Filter) Predicate() Predicate {
	switch f {
	case FilterPending:
		return Pending
	case FilterCompleted:
		return Completed
	default:
		return All
	}
}

// Apply returns the matching tasks in their original order.
func (f Filter) Apply(tasks []Task) []Task {
	return FilterTasks(tasks, f.Predicate())
}

// FilterTasks returns the tasks matching pred in their original order.
// The result never aliases the input.
func FilterTasks(tasks []Task, pred Predicate) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if pred(task) {
			result = append(result, task)
		}
	}
	return result
}

// SortByRecency returns a copy of tasks ordered by creation time, newest
// first. Tasks created at the same instant keep their relative order.
func SortByRecency(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
