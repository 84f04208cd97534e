package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	task := NewTask("id-1", "Buy milk", "2 litres", created)

	assert.Equal(t, Task{
		ID:          "id-1",
		Title:       "Buy milk",
		Description: "2 litres",
		Completed:   false,
		CreatedAt:   created,
	}, task)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task",
			task:     Task{ID: "a", Title: "Valid"},
			expected: true,
		},
		{
			name:     "missing title",
			task:     Task{ID: "a"},
			expected: false,
		},
		{
			name:     "blank title",
			task:     Task{ID: "a", Title: "  "},
			expected: false,
		},
		{
			name:     "missing id",
			task:     Task{Title: "Valid"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Toggle(t *testing.T) {
	original := Task{ID: "a", Title: "Write report"}

	toggled := original.Toggle()
	assert.True(t, toggled.Completed)
	assert.False(t, original.Completed, "Toggle must not modify the receiver")

	assert.Equal(t, original, toggled.Toggle())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Buy milk", Task{Title: "Buy milk"}.String())
	assert.False(t, Task{Title: "Buy milk"}.HasDescription())
	assert.True(t, Task{Description: "soon"}.HasDescription())
}
