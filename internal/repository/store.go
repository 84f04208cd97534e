// Package repository defines the key-value storage the application persists
// its state through, with SQLite and in-memory implementations in
// subpackages.
package repository

import "context"

// Storage keys
const (
	KeyUsername = "todo-app-username"
	KeyTodos    = "todos"
)

// Store is a string key-value store. Get reports absence with ok=false
// rather than an error; an error from Get or Set means the backend itself
// failed.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
