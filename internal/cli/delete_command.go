package cli

import (
	"context"
	"fmt"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: td delete <id>")
	}

	task, err := c.businessAPI.DeleteTask(ctx, args[0])
	if err != nil {
		return handleTaskRefError(c.errorHandler, "delete task", args[0], err)
	}

	c.app.printf("Deleted task: %s\n", task.Title)
	return nil
}

// handleTaskRefError reports a task reference that matched nothing in
// plain words and defers everything else to the error handler
func handleTaskRefError(eh *ErrorHandler, operation, ref string, err error) error {
	if eh.IsNotFoundError(err) {
		return fmt.Errorf("no task matches %q", ref)
	}
	return eh.Handle(operation, err)
}
