package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"todo-tracker/internal/api"
	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/services"
	"todo-tracker/internal/validation"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	tasks    []domain.Task
	username string
	nextID   int
	now      time.Time

	initializedWith *string
	closed          bool

	// Injected failures
	initErr  error
	writeErr error
}

// newMockBusinessAPI creates a mock with the default user and no tasks
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{
		username: config.DefaultUsername,
		nextID:   1,
		now:      time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

var _ api.BusinessAPI = (*mockBusinessAPI)(nil)

func (m *mockBusinessAPI) Initialize(ctx context.Context, rawURL string) error {
	m.initializedWith = &rawURL
	if m.initErr != nil {
		return m.initErr
	}
	if username, ok := services.UsernameFromURL(rawURL); ok {
		if err := validation.NewUsernameValidator().ValidateUsername(username); err != nil {
			return errors.NewValidationError("invalid username", err)
		}
		m.username = username
	}
	return nil
}

func (m *mockBusinessAPI) Close() error {
	m.closed = true
	return nil
}

func (m *mockBusinessAPI) Username() string {
	return m.username
}

func (m *mockBusinessAPI) SetUsername(ctx context.Context, username string) error {
	if err := validation.NewUsernameValidator().ValidateUsername(username); err != nil {
		return errors.NewValidationError("invalid username", err)
	}
	if m.writeErr != nil {
		return errors.NewStorageError("write", repository.KeyUsername, m.writeErr)
	}
	m.username = username
	return nil
}

func (m *mockBusinessAPI) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		ve := validation.NewValidationError()
		ve.AddRequiredError("title")
		return nil, errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	if m.writeErr != nil {
		return nil, errors.NewStorageError("write", repository.KeyTodos, m.writeErr)
	}
	task := domain.NewTask(fmt.Sprintf("task-%02d-abcdef", m.nextID), title, strings.TrimSpace(description), m.now)
	m.nextID++
	m.now = m.now.Add(time.Minute)
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockBusinessAPI) ToggleTask(ctx context.Context, ref string) (*domain.Task, error) {
	i, err := m.indexOf(ref)
	if err != nil {
		return nil, err
	}
	if m.writeErr != nil {
		return nil, errors.NewStorageError("write", repository.KeyTodos, m.writeErr)
	}
	m.tasks[i] = m.tasks[i].Toggle()
	task := m.tasks[i]
	return &task, nil
}

func (m *mockBusinessAPI) DeleteTask(ctx context.Context, ref string) (*domain.Task, error) {
	i, err := m.indexOf(ref)
	if err != nil {
		return nil, err
	}
	if m.writeErr != nil {
		return nil, errors.NewStorageError("write", repository.KeyTodos, m.writeErr)
	}
	task := m.tasks[i]
	m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
	return &task, nil
}

func (m *mockBusinessAPI) GetTask(ctx context.Context, ref string) (*domain.Task, error) {
	i, err := m.indexOf(ref)
	if err != nil {
		return nil, err
	}
	task := m.tasks[i]
	return &task, nil
}

func (m *mockBusinessAPI) ListTasks(ctx context.Context, filter domain.Filter) ([]domain.Task, error) {
	return domain.SortByRecency(filter.Apply(m.tasks)), nil
}

func (m *mockBusinessAPI) GetFilterCounts(ctx context.Context) []services.FilterCount {
	stats := domain.ComputeStats(m.tasks)
	counts := make([]services.FilterCount, len(domain.Filters))
	for i, f := range domain.Filters {
		counts[i] = services.FilterCount{Filter: f, Count: stats.Count(f)}
	}
	return counts
}

func (m *mockBusinessAPI) GetDashboardData(ctx context.Context, limit int) (*services.DashboardData, error) {
	recent := domain.SortByRecency(m.tasks)
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return &services.DashboardData{
		Username: m.username,
		Stats:    domain.ComputeStats(m.tasks),
		Recent:   recent,
	}, nil
}

// indexOf resolves ref as a full id or unique id prefix
func (m *mockBusinessAPI) indexOf(ref string) (int, error) {
	found := -1
	for i, task := range m.tasks {
		if task.ID == ref {
			return i, nil
		}
		if ref != "" && strings.HasPrefix(task.ID, ref) {
			if found >= 0 {
				return -1, errors.NewInvalidInputError("id", ref, "matches more than one task")
			}
			found = i
		}
	}
	if found < 0 {
		return -1, errors.NewNotFoundError("task", ref)
	}
	return found, nil
}

// setupTestAppWithMockBusinessAPI creates an App over a mock API writing
// uncoloured output to a buffer
func setupTestAppWithMockBusinessAPI(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockBusinessAPI()
	cfg := config.NewConfig()
	cfg.Display.NoColor = true
	out := &bytes.Buffer{}
	return NewApp(mock, cfg, out), mock, out
}
