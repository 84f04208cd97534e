package sqlite

import "time"

// Entry represents a single row of the kv_store table
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
