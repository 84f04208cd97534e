package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"todo-tracker/internal/cli"
	"todo-tracker/internal/config"
)

func main() {
	// Defaults, config file and environment; flags are applied by the root command
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cfg, cli.DefaultAPIFactory)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
