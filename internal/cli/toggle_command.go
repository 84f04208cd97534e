package cli

import (
	"context"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: td toggle <id>")
	}

	task, err := c.businessAPI.ToggleTask(ctx, args[0])
	if err != nil {
		return handleTaskRefError(c.errorHandler, "toggle task", args[0], err)
	}

	if task.Completed {
		c.app.printf("Completed: %s\n", c.app.styles.Completed.Render(task.Title))
	} else {
		c.app.printf("Marked pending: %s\n", c.app.styles.Pending.Render(task.Title))
	}
	return nil
}
