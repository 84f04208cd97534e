package domain

import (
	"strings"
	"time"
)

// Task represents a todo item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// NewTask creates a pending Task. Title and description are taken as given;
// trimming and validation happen before construction.
func NewTask(id, title, description string, createdAt time.Time) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// IsValid checks if the task has an id and a non-blank title.
func (t Task) IsValid() bool {
	return t.ID != "" && strings.TrimSpace(t.Title) != ""
}

// Toggle returns a copy of the task with its completion state flipped.
func (t Task) Toggle() Task {
	t.Completed = !t.Completed
	return t
}

// HasDescription reports whether the task carries a description.
func (t Task) HasDescription() bool {
	return t.Description != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
