package services

import (
	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	todos TodoService
}

// NewReportingService creates a new ReportingService over todos
func NewReportingService(todos TodoService) ReportingService {
	return &reportingServiceImpl{todos: todos}
}

// Stats counts the current tasks by state
func (r *reportingServiceImpl) Stats() domain.Stats {
	return domain.ComputeStats(r.todos.Tasks())
}

// Recent returns up to limit tasks, newest first. A non-positive limit
// uses the default.
func (r *reportingServiceImpl) Recent(limit int) []domain.Task {
	if limit <= 0 {
		limit = config.DefaultRecentLimit
	}
	sorted := domain.SortByRecency(r.todos.Tasks())
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// List returns the tasks matching filter, newest first
func (r *reportingServiceImpl) List(filter domain.Filter) []domain.Task {
	return domain.SortByRecency(r.todos.Filter(filter.Predicate()))
}

// FilterCounts returns the number of tasks in each list view
func (r *reportingServiceImpl) FilterCounts() []FilterCount {
	stats := r.Stats()
	counts := make([]FilterCount, len(domain.Filters))
	for i, f := range domain.Filters {
		counts[i] = FilterCount{Filter: f, Count: stats.Count(f)}
	}
	return counts
}

// GetDashboardData collects everything the dashboard shows
func (r *reportingServiceImpl) GetDashboardData(username string, limit int) *DashboardData {
	return &DashboardData{
		Username: username,
		Stats:    r.Stats(),
		Recent:   r.Recent(limit),
	}
}
