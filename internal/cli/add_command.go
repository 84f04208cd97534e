package cli

import (
	"context"
	"strings"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	description  string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// WithDescription sets the description given to the new task
func (c *AddCommand) WithDescription(description string) *AddCommand {
	c.description = description
	return c
}

// Execute runs the add command. All arguments are joined to form the title.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", `usage: td add "task title" [-d "description"]`)
	}
	title := strings.Join(args, " ")

	task, err := c.businessAPI.AddTask(ctx, title, c.description)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %s: %s\n", c.app.styles.Muted.Render(ShortID(task.ID)), task.Title)
	return nil
}
