package cli

import (
	"context"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{app: app, businessAPI: app.businessAPI}
}

// Execute prints the active username
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "whoami", "usage: td whoami")
	}
	c.app.println(c.businessAPI.Username())
	return nil
}

// UserCommand handles the user command
type UserCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewUserCommand creates a new user command handler
func NewUserCommand(app *App) *UserCommand {
	return &UserCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs "user set <name>". With no arguments the active username
// is printed.
func (c *UserCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.app.println(c.businessAPI.Username())
		return nil
	}
	if args[0] != "set" || len(args) != 2 {
		return errors.NewInvalidInputError("command", "user", "usage: td user set <name>")
	}

	if err := c.businessAPI.SetUsername(ctx, args[1]); err != nil {
		return c.errorHandler.Handle("set username", err)
	}
	c.app.printf("Username set to: %s\n", c.app.styles.Accent.Render(c.businessAPI.Username()))
	return nil
}
