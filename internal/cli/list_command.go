package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-tracker/internal/api"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "list", "usage: td list [all|pending|completed]")
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}
	filter, err := domain.ParseFilter(name)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	tasks, err := c.businessAPI.ListTasks(ctx, filter)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.app.println(c.renderFilterBar(ctx, filter))
	c.app.println()

	if len(tasks) == 0 {
		c.printEmpty(filter)
		return nil
	}
	for _, task := range tasks {
		c.app.println(c.app.styles.RenderTask(task, c.app.config.Display.TimeFormat))
	}
	return nil
}

// renderFilterBar renders every view with its count, highlighting the active one
func (c *ListCommand) renderFilterBar(ctx context.Context, active domain.Filter) string {
	counts := c.businessAPI.GetFilterCounts(ctx)
	parts := make([]string, len(counts))
	for i, fc := range counts {
		label := fmt.Sprintf("%s (%d)", filterLabel(fc.Filter), fc.Count)
		if fc.Filter == active {
			parts[i] = c.app.styles.Heading.Render(label)
		} else {
			parts[i] = c.app.styles.Muted.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}

// printEmpty explains an empty view
func (c *ListCommand) printEmpty(filter domain.Filter) {
	if filter == domain.FilterAll {
		c.app.println("No tasks yet")
		c.app.println(c.app.styles.Hint.Render(`Get started by creating your first task: td add "title"`))
		return
	}
	c.app.printf("No %s tasks\n", filter)
	c.app.println(c.app.styles.Hint.Render(fmt.Sprintf("You don't have any %s tasks at the moment", filter)))
}

// filterLabel returns the display label of a view
func filterLabel(f domain.Filter) string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
