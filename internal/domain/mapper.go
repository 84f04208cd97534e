package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TaskRecord is the stored form of a Task, one element of the JSON array
// kept under the todos key.
type TaskRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// Timestamp encodes as an RFC 3339 string. It decodes RFC 3339 strings
// and, for payloads written by older clients, epoch milliseconds.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ts).UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*ts = Timestamp{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid createdAt %q: %w", s, err)
		}
		*ts = Timestamp(t)
		return nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid createdAt %s: %w", raw, err)
	}
	*ts = Timestamp(time.UnixMilli(millis).UTC())
	return nil
}

// TaskMapper handles conversion between domain Tasks and stored records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its stored record.
func (m *TaskMapper) ToRecord(task Task) TaskRecord {
	return TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   Timestamp(task.CreatedAt),
	}
}

// FromRecord converts a stored record to a domain Task.
func (m *TaskMapper) FromRecord(record TaskRecord) Task {
	return Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Completed:   record.Completed,
		CreatedAt:   time.Time(record.CreatedAt),
	}
}

// ToRecordSlice converts a slice of domain Tasks to records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of records to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(record)
	}
	return tasks
}

// Encode serializes tasks to the stored JSON array. A nil slice encodes
// as an empty array.
func (m *TaskMapper) Encode(tasks []Task) (string, error) {
	data, err := json.Marshal(m.ToRecordSlice(tasks))
	if err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored JSON array back into tasks, preserving order.
func (m *TaskMapper) Decode(payload string) ([]Task, error) {
	var records []TaskRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return m.FromRecordSlice(records), nil
}
