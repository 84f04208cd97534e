package cli

import (
	"context"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the dashboard command
func (c *DashboardCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "dashboard", "usage: td dashboard")
	}

	data, err := c.businessAPI.GetDashboardData(ctx, c.app.config.Display.RecentLimit)
	if err != nil {
		return c.errorHandler.Handle("load dashboard", err)
	}

	styles := c.app.styles
	c.app.println(styles.Heading.Render("Dashboard"))
	c.app.printf("Signed in as %s\n\n", styles.Accent.Render(data.Username))
	c.app.println(styles.RenderStats(data.Stats))
	c.app.println()

	if len(data.Recent) == 0 {
		c.app.println("No tasks yet")
		c.app.println(styles.Hint.Render(`Get started by creating your first task: td add "title"`))
		return nil
	}

	c.app.println(styles.Heading.Render("Recent Tasks"))
	for _, task := range data.Recent {
		c.app.println(styles.RenderTask(task, c.app.config.Display.TimeFormat))
	}
	if data.Stats.Total > len(data.Recent) {
		c.app.println(styles.Hint.Render("View all tasks: td list"))
	}
	return nil
}
