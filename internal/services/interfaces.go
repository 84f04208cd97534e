package services

import (
	"context"

	"todo-tracker/internal/domain"
)

// DashboardData represents all data needed for the dashboard view
type DashboardData struct {
	Username string
	Stats    domain.Stats
	Recent   []domain.Task
}

// FilterCount pairs a list view with the number of tasks it shows
type FilterCount struct {
	Filter domain.Filter
	Count  int
}

// IdentityService resolves, validates and persists the active username
type IdentityService interface {
	// Validation
	ValidateUsername(username string) error
	IsValidUsername(username string) bool

	// Resolution: URL parameter, then storage, then the default
	Resolve(ctx context.Context, rawURL string) (string, error)
	LoadStored(ctx context.Context) string
	DefaultUsername() string

	// Persistence
	Persist(ctx context.Context, username string) error
}

// TodoService owns the in-memory task collection and writes it through
// to storage on every change
type TodoService interface {
	// Loading
	Load(ctx context.Context) []domain.Task

	// Mutations, each persisted before returning
	Add(ctx context.Context, title, description string) (domain.Task, error)
	Toggle(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error

	// Queries over the current collection
	Tasks() []domain.Task
	Filter(pred domain.Predicate) []domain.Task
	Find(id string) (domain.Task, bool)
	FindByPrefix(prefix string) (domain.Task, error)
}

// ReportingService derives summaries from the task collection
type ReportingService interface {
	Stats() domain.Stats
	Recent(limit int) []domain.Task
	List(filter domain.Filter) []domain.Task
	FilterCounts() []FilterCount
	GetDashboardData(username string, limit int) *DashboardData
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	IdentityService  IdentityService
	TodoService      TodoService
	ReportingService ReportingService
}
