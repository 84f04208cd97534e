package config

import (
	"fmt"
	"os"

	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/memory"
	"todo-tracker/internal/repository/sqlite"
)

// StoreFactory creates storage instances based on environment and configuration
type StoreFactory struct {
	env    Environment
	config *Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *Config) *StoreFactory {
	return &StoreFactory{env: env, config: cfg}
}

// CreateStore creates a store instance based on the current environment.
// The testing environment always uses memory; otherwise the configured
// backend decides.
func (sf *StoreFactory) CreateStore() (repository.Store, error) {
	switch sf.env {
	case Testing:
		return CreateTestStore(), nil
	case Development:
		return sf.createDevelopmentStore()
	default:
		return CreateStore(sf.config)
	}
}

// createDevelopmentStore keeps the configured database file in the working
// directory instead of the storage directory. The memory backend is honoured.
func (sf *StoreFactory) createDevelopmentStore() (repository.Store, error) {
	if sf.config.Storage.Backend == BackendMemory {
		return CreateTestStore(), nil
	}
	store, err := sqlite.NewWithOptions(sf.config.Storage.Filename, sqliteOptions(sf.config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development storage: %w", err)
	}
	return store, nil
}

// CreateStore creates a store instance using the configuration system
func CreateStore(config *Config) (repository.Store, error) {
	if config.Storage.Backend == BackendMemory {
		return CreateTestStore(), nil
	}

	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	store, err := sqlite.NewWithOptions(config.GetStoragePath(), sqliteOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() repository.Store {
	return memory.New()
}

func sqliteOptions(config *Config) sqlite.Options {
	if config == nil {
		return sqlite.DefaultOptions()
	}
	return sqlite.Options{
		ReadTimeout:  config.GetReadTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	}
}
