package api

import (
	"context"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/services"
)

// BusinessAPI is the single entry point the presentation layer talks to.
// One instance owns the identity session and the task collection for the
// life of the process; Initialize must be called once before use.
type BusinessAPI interface {
	// ========== Lifecycle ==========

	// Initialize loads persisted tasks and resolves the active username
	// from rawURL, storage or the default. Tasks are loaded even when
	// resolution fails; the error is returned for the caller to report.
	Initialize(ctx context.Context, rawURL string) error

	// Close releases the underlying storage
	Close() error

	// ========== Identity ==========

	// Username returns the active username
	Username() string

	// SetUsername validates, persists and activates a new username
	SetUsername(ctx context.Context, username string) error

	// ========== Task Workflows ==========

	// AddTask creates a new pending task
	AddTask(ctx context.Context, title, description string) (*domain.Task, error)

	// ToggleTask flips the completion state of the task matching ref, a
	// full id or a unique id prefix, and returns the updated task
	ToggleTask(ctx context.Context, ref string) (*domain.Task, error)

	// DeleteTask removes the task matching ref and returns it
	DeleteTask(ctx context.Context, ref string) (*domain.Task, error)

	// ========== Query Operations ==========

	// GetTask returns the task matching ref
	GetTask(ctx context.Context, ref string) (*domain.Task, error)

	// ListTasks returns the tasks in the given view, newest first
	ListTasks(ctx context.Context, filter domain.Filter) ([]domain.Task, error)

	// GetFilterCounts returns the number of tasks in each view
	GetFilterCounts(ctx context.Context) []services.FilterCount

	// ========== Dashboard ==========

	// GetDashboardData returns the username, statistics and the limit most
	// recent tasks
	GetDashboardData(ctx context.Context, limit int) (*services.DashboardData, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	store       repository.Store
	services    *services.ServiceContainer
	session     *services.Session
	initialized bool
}

// NewBusinessAPI creates a BusinessAPI over an already wired service container
func NewBusinessAPI(store repository.Store, container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		store:    store,
		services: container,
		session:  services.NewSession(container.IdentityService),
	}
}

// ========== Lifecycle ==========

func (b *businessAPIImpl) Initialize(ctx context.Context, rawURL string) error {
	b.services.TodoService.Load(ctx)
	b.initialized = true
	return b.session.Start(ctx, rawURL)
}

func (b *businessAPIImpl) Close() error {
	if b.store == nil {
		return nil
	}
	return b.store.Close()
}

// ========== Identity ==========

func (b *businessAPIImpl) Username() string {
	return b.session.Username()
}

func (b *businessAPIImpl) SetUsername(ctx context.Context, username string) error {
	return b.session.SetUsername(ctx, username)
}

// ========== Task Workflows ==========

func (b *businessAPIImpl) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	if err := b.ensureInitialized(); err != nil {
		return nil, err
	}
	task, err := b.services.TodoService.Add(ctx, title, description)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (b *businessAPIImpl) ToggleTask(ctx context.Context, ref string) (*domain.Task, error) {
	task, err := b.GetTask(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := b.services.TodoService.Toggle(ctx, task.ID); err != nil {
		return nil, err
	}
	updated, _ := b.services.TodoService.Find(task.ID)
	return &updated, nil
}

func (b *businessAPIImpl) DeleteTask(ctx context.Context, ref string) (*domain.Task, error) {
	task, err := b.GetTask(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := b.services.TodoService.Remove(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// ========== Query Operations ==========

func (b *businessAPIImpl) GetTask(ctx context.Context, ref string) (*domain.Task, error) {
	if err := b.ensureInitialized(); err != nil {
		return nil, err
	}
	task, err := b.services.TodoService.FindByPrefix(ref)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (b *businessAPIImpl) ListTasks(ctx context.Context, filter domain.Filter) ([]domain.Task, error) {
	if err := b.ensureInitialized(); err != nil {
		return nil, err
	}
	return b.services.ReportingService.List(filter), nil
}

func (b *businessAPIImpl) GetFilterCounts(ctx context.Context) []services.FilterCount {
	return b.services.ReportingService.FilterCounts()
}

// ========== Dashboard ==========

func (b *businessAPIImpl) GetDashboardData(ctx context.Context, limit int) (*services.DashboardData, error) {
	if err := b.ensureInitialized(); err != nil {
		return nil, err
	}
	return b.services.ReportingService.GetDashboardData(b.session.Username(), limit), nil
}

// ensureInitialized rejects task operations before the collection is loaded,
// which would otherwise overwrite stored tasks with an empty list
func (b *businessAPIImpl) ensureInitialized() error {
	if !b.initialized {
		return errors.WrapError(nil, errors.ErrorTypeInvalidInput, "api used before Initialize")
	}
	return nil
}
