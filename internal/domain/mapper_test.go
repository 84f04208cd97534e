package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	record := mapper.ToRecord(Task{ID: "a", Title: "T", Description: "D", Completed: true, CreatedAt: created})

	assert.Equal(t, "a", record.ID)
	assert.Equal(t, "T", record.Title)
	assert.Equal(t, "D", record.Description)
	assert.True(t, record.Completed)
	assert.True(t, created.Equal(time.Time(record.CreatedAt)))
}

func TestTaskMapper_EncodeFormat(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2024, 1, 15, 10, 0, 0, 500000000, time.UTC)

	payload, err := mapper.Encode([]Task{{ID: "a", Title: "Buy milk", CreatedAt: created}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":"a","title":"Buy milk","description":"","completed":false,"createdAt":"2024-01-15T10:00:00.5Z"}]`, payload)
}

func TestTaskMapper_EncodeEmpty(t *testing.T) {
	mapper := NewTaskMapper()

	payload, err := mapper.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", payload)
}

func TestTaskMapper_DecodePreservesOrder(t *testing.T) {
	mapper := NewTaskMapper()
	tasks := []Task{
		{ID: "1", Title: "first", CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "second", Completed: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Title: "third", Description: "x", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	payload, err := mapper.Encode(tasks)
	require.NoError(t, err)

	decoded, err := mapper.Decode(payload)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, decoded[i].ID)
		assert.Equal(t, tasks[i].Completed, decoded[i].Completed)
		assert.True(t, tasks[i].CreatedAt.Equal(decoded[i].CreatedAt))
	}
}

func TestTaskMapper_DecodeBrowserPayload(t *testing.T) {
	mapper := NewTaskMapper()
	payload := `[
		{"id":"9b2c","title":"From browser","description":"","completed":false,"createdAt":"2024-05-01T08:30:00.000Z"},
		{"id":"1f0a","title":"Epoch","description":"old","completed":true,"createdAt":1714552200000}
	]`

	tasks, err := mapper.Decode(payload)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.True(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC).Equal(tasks[0].CreatedAt))
	assert.True(t, time.UnixMilli(1714552200000).Equal(tasks[1].CreatedAt))
	assert.True(t, tasks[1].Completed)
}

func TestTaskMapper_DecodeInvalid(t *testing.T) {
	mapper := NewTaskMapper()

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json"},
		{"wrong shape", `{"id":"a"}`},
		{"bad timestamp", `[{"id":"a","title":"t","createdAt":"yesterday"}]`},
		{"bad epoch", `[{"id":"a","title":"t","createdAt":true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapper.Decode(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestTimestamp_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, time.Time(ts).IsZero())
}
