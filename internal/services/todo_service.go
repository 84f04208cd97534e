package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/validation"
)

// TodoOption configures a TodoService
type TodoOption func(*todoServiceImpl)

// WithIDGenerator replaces the UUID generator used for new task ids
func WithIDGenerator(next func() string) TodoOption {
	return func(s *todoServiceImpl) {
		s.newID = next
	}
}

// WithClock replaces the clock used to stamp new tasks
func WithClock(now func() time.Time) TodoOption {
	return func(s *todoServiceImpl) {
		s.now = now
	}
}

// WithTaskValidator replaces the validator applied to new tasks
func WithTaskValidator(v *validation.TaskValidator) TodoOption {
	return func(s *todoServiceImpl) {
		s.taskValidator = v
	}
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	store         repository.Store
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
	newID         func() string
	now           func() time.Time
	tasks         []domain.Task
}

// NewTodoService creates a new TodoService with an empty collection. Call
// Load to read the persisted tasks.
func NewTodoService(store repository.Store, opts ...TodoOption) TodoService {
	s := &todoServiceImpl{
		store:         store,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(),
		newID:         uuid.NewString,
		now:           time.Now,
		tasks:         []domain.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the persisted tasks. A missing,
// unreadable or corrupt payload yields an empty collection.
func (s *todoServiceImpl) Load(ctx context.Context) []domain.Task {
	s.tasks = []domain.Task{}

	payload, ok, err := s.store.Get(ctx, repository.KeyTodos)
	if err != nil {
		logging.Warnf("failed to read tasks from storage: %v", err)
		return s.Tasks()
	}
	if !ok || strings.TrimSpace(payload) == "" {
		return s.Tasks()
	}

	tasks, err := s.mapper.Decode(payload)
	if err != nil {
		logging.Warnf("ignoring corrupt task list in storage: %v", err)
		return s.Tasks()
	}
	s.tasks = keepValid(tasks)
	logging.Debugf("loaded %d tasks\n", len(s.tasks))
	return s.Tasks()
}

// keepValid drops stored records that have no id or title, and records
// repeating an id already seen. The first record with an id wins.
func keepValid(tasks []domain.Task) []domain.Task {
	seen := make(map[string]bool, len(tasks))
	valid := make([]domain.Task, 0, len(tasks))
	for i, task := range tasks {
		switch {
		case !task.IsValid():
			logging.Warnf("ignoring stored task %d without an id or title", i)
		case seen[task.ID]:
			logging.Warnf("ignoring stored task %d with duplicate id %q", i, task.ID)
		default:
			seen[task.ID] = true
			valid = append(valid, task)
		}
	}
	return valid
}

// Add creates a pending task from the trimmed title and description and
// appends it to the collection
func (s *todoServiceImpl) Add(ctx context.Context, title, description string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := s.taskValidator.ValidateTaskForCreation(title, description); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	task := domain.NewTask(s.newID(), title, description, s.now())

	next := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)

	if err := s.commit(ctx, next); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Toggle flips the completion state of the task with id. An unknown id
// leaves the collection unchanged but is still persisted.
func (s *todoServiceImpl) Toggle(ctx context.Context, id string) error {
	next := make([]domain.Task, len(s.tasks))
	for i, task := range s.tasks {
		if task.ID == id {
			task = task.Toggle()
		}
		next[i] = task
	}
	return s.commit(ctx, next)
}

// Remove deletes the task with id. An unknown id leaves the collection
// unchanged but is still persisted.
func (s *todoServiceImpl) Remove(ctx context.Context, id string) error {
	next := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ID != id {
			next = append(next, task)
		}
	}
	return s.commit(ctx, next)
}

// commit persists next and only then makes it the current collection, so
// a failed write leaves the previous state in place
func (s *todoServiceImpl) commit(ctx context.Context, next []domain.Task) error {
	payload, err := s.mapper.Encode(next)
	if err != nil {
		return errors.NewStorageError("encode", repository.KeyTodos, err)
	}
	if err := s.store.Set(ctx, repository.KeyTodos, payload); err != nil {
		return errors.NewStorageError("write", repository.KeyTodos, err)
	}
	s.tasks = next
	return nil
}

// Tasks returns a copy of the collection in insertion order
func (s *todoServiceImpl) Tasks() []domain.Task {
	return domain.FilterTasks(s.tasks, domain.All)
}

// Filter returns the tasks matching pred in insertion order
func (s *todoServiceImpl) Filter(pred domain.Predicate) []domain.Task {
	return domain.FilterTasks(s.tasks, pred)
}

// Find returns the task with exactly id
func (s *todoServiceImpl) Find(id string) (domain.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// FindByPrefix returns the single task whose id is, or starts with,
// prefix. No match is a not found error; several matches are an invalid
// input error.
func (s *todoServiceImpl) FindByPrefix(prefix string) (domain.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return domain.Task{}, errors.NewInvalidInputError("id", prefix, "task id cannot be empty")
	}
	if task, ok := s.Find(prefix); ok {
		return task, nil
	}

	var matches []domain.Task
	for _, task := range s.tasks {
		if strings.HasPrefix(task.ID, prefix) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Task{}, errors.NewNotFoundError("task", prefix)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, errors.NewInvalidInputError("id", prefix, "matches more than one task").
			WithContext("matches", len(matches))
	}
}
