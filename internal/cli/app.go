package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo-tracker/internal/api"
	"todo-tracker/internal/config"
)

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	out         io.Writer
	styles      *Styles
	registry    *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection.
// A nil config uses the defaults; a nil writer uses stdout.
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         out,
		styles:      NewStyles(out, cfg.Display.NoColor),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command with the given arguments. With no
// arguments the dashboard is shown.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.registry.Execute(ctx, "dashboard", nil)
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// printf writes formatted output to the application's writer
func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// println writes a line to the application's writer
func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}
