// Package api wires storage, services and the identity session into the
// BusinessAPI the CLI consumes.
package api

import (
	"todo-tracker/internal/config"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/services"
	"todo-tracker/internal/validation"
)

// New creates a BusinessAPI over store using the limits and default
// username from cfg. A nil cfg uses the defaults. Extra options are passed
// to the todo service.
func New(store repository.Store, cfg *config.Config, opts ...services.TodoOption) (BusinessAPI, error) {
	container, err := NewServiceContainer(store, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewBusinessAPI(store, container), nil
}

// NewServiceContainer builds the services behind a BusinessAPI
func NewServiceContainer(store repository.Store, cfg *config.Config, opts ...services.TodoOption) (*services.ServiceContainer, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	identity, err := services.NewIdentityService(store, cfg.Identity.DefaultUsername)
	if err != nil {
		return nil, err
	}

	todoOpts := append([]services.TodoOption{
		services.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg)),
	}, opts...)
	todos := services.NewTodoService(store, todoOpts...)

	return &services.ServiceContainer{
		IdentityService:  identity,
		TodoService:      todos,
		ReportingService: services.NewReportingService(todos),
	}, nil
}
