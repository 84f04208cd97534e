package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo-tracker/internal/api"
	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/services"
)

// APIFactory builds the BusinessAPI once configuration is final
type APIFactory func(cfg *config.Config) (api.BusinessAPI, error)

// DefaultAPIFactory opens the store chosen by TD_ENV and the configuration
func DefaultAPIFactory(cfg *config.Config) (api.BusinessAPI, error) {
	store, err := config.NewStoreFactory(config.GetEnvironment(), cfg).CreateStore()
	if err != nil {
		return nil, err
	}
	businessAPI, err := api.New(store, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return businessAPI, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	factory      APIFactory
	config       *config.Config
	app          *App
	errorHandler *ErrorHandler
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if factory == nil {
		factory = DefaultAPIFactory
	}
	root := &RootCommand{
		factory:      factory,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A personal task tracker",
		Long: `td is a command-line task tracker. Tasks are kept in a local
SQLite database together with the active username.

EXAMPLES:
  td                                       # Dashboard: stats and recent tasks
  td add "Buy milk" -d "semi-skimmed"      # Add a task
  td list pending                          # List pending tasks, newest first
  td toggle 3f2a9c1e                       # Complete or reopen a task (id prefix is enough)
  td delete 3f2a                           # Delete a task
  td user set jane-doe                     # Change the active username
  td --url "https://todo.example.com/?username=jane-doe" whoami

USERNAME:
  The username comes from the "username" parameter of --url, then storage,
  then the default (john-doe). Usernames may contain letters, digits,
  hyphens and underscores only. If the URL carries an invalid username,
  re-run with --continue-default to ignore it.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment
  variables > config file (~/.td/config.yaml or TD_CONFIG_FILE) > defaults

    TD_STORE_BACKEND                       sqlite or memory (default: sqlite)
    TD_STORE_DIR                           Storage directory (default: ~/.td)
    TD_ENV                                 production, development or testing. development
                                           keeps the database in the working directory and
                                           ignores --store-dir; testing always uses memory
    TD_STORE_FILENAME                      Database filename (default: td.db)
    TD_DEFAULT_USERNAME                    Fallback username (default: john-doe)
    TD_URL                                 URL to read the username from
    TD_DISPLAY_RECENT_LIMIT                Tasks on the dashboard (default: 3)
    TD_DISPLAY_NO_COLOR                    Disable colour output
    TD_APP_TIMEOUT                         Application timeout (default: 30s)
    TD_DEBUG                               Print debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsAPI(cmd) {
				return nil
			}
			if err := root.applyFlagOverrides(); err != nil {
				return err
			}
			return root.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, func(ctx context.Context) error {
				return NewDashboardCommand(root.app).Execute(ctx, args)
			})
		},
		Args: cobra.NoArgs,
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases storage afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx and releases storage afterwards
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.Close(); closeErr != nil && err == nil {
		err = r.errorHandler.Handle("close storage", closeErr)
	}
	return err
}

// Close releases the API opened for the command, if any
func (r *RootCommand) Close() error {
	if r.app == nil || r.app.businessAPI == nil {
		return nil
	}
	businessAPI := r.app.businessAPI
	r.app = nil
	return businessAPI.Close()
}

// SetArgs sets the arguments to parse instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output and errors
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// Config returns the configuration in effect after flag overrides
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file to load instead of the default (overrides TD_CONFIG_FILE)")

	// Identity configuration
	flags.String("url", "", "URL whose username parameter selects the user (overrides TD_URL)")
	flags.Bool("continue-default", false, "Ignore the username in --url and continue with the stored or default user")
	flags.String("default-username", "", "Fallback username (overrides TD_DEFAULT_USERNAME)")

	// Storage configuration
	flags.String("store-backend", "", "Storage backend: sqlite or memory (overrides TD_STORE_BACKEND)")
	flags.String("store-dir", "", "Storage directory (overrides TD_STORE_DIR; ignored when TD_ENV=development)")
	flags.String("store-filename", "", "Database filename (overrides TD_STORE_FILENAME)")
	flags.Duration("store-write-timeout", 0, "Storage write timeout (overrides TD_STORE_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides TD_TIME_DISPLAY_FORMAT)")
	flags.Int("recent-limit", 0, "Number of tasks on the dashboard (overrides TD_DISPLAY_RECENT_LIMIT)")
	flags.Bool("no-color", false, "Disable colour output (overrides TD_DISPLAY_NO_COLOR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TD_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Dashboard command
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show task statistics and the most recent tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewDashboardCommand(r.app).Execute(ctx, args)
			})
		},
	}

	// Add command
	var description string
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new pending task. All arguments are joined to form the title.
Leading and trailing whitespace is removed from the title and description.

Examples:
  td add Buy milk
  td add "Write report" -d "Quarterly numbers"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewAddCommand(r.app).WithDescription(description).Execute(ctx, args)
			})
		},
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Optional task description")

	// List command
	listCmd := &cobra.Command{
		Use:       "list [all|pending|completed]",
		Short:     "List tasks, newest first",
		Aliases:   []string{"ls"},
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"all", "pending", "completed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewListCommand(r.app).Execute(ctx, args)
			})
		},
	}

	// Toggle command
	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed, or pending again",
		Long:  "Flip the completion state of a task. The id may be shortened to any unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewToggleCommand(r.app).Execute(ctx, args)
			})
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task",
		Long:    "Delete a task. The id may be shortened to any unique prefix. This cannot be undone.",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewDeleteCommand(r.app).Execute(ctx, args)
			})
		},
	}

	// Whoami command
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the active username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewWhoamiCommand(r.app).Execute(ctx, args)
			})
		},
	}

	// User command
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Show or change the active username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewUserCommand(r.app).Execute(ctx, args)
			})
		},
	}
	userSetCmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Validate, save and switch to a new username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) error {
				return NewUserCommand(r.app).Execute(ctx, append([]string{"set"}, args...))
			})
		},
	}
	userCmd.AddCommand(userSetCmd)

	// Add all subcommands to root
	r.cmd.AddCommand(
		dashboardCmd,
		addCmd,
		listCmd,
		toggleCmd,
		deleteCmd,
		whoamiCmd,
		userCmd,
	)
}

// run executes fn under the application timeout
func (r *RootCommand) run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()
	return fn(ctx)
}

// initialize opens the API and resolves the active username. With
// --continue-default the username parameter is removed from the URL first.
func (r *RootCommand) initialize(cmd *cobra.Command) error {
	logging.SetVerbose(r.config.Application.Verbose)

	businessAPI, err := r.factory(r.config)
	if err != nil {
		return r.errorHandler.Handle("open storage", err)
	}
	r.app = NewApp(businessAPI, r.config, cmd.OutOrStdout())

	rawURL := r.config.Identity.URL
	if continueDefault, _ := r.cmd.PersistentFlags().GetBool("continue-default"); continueDefault {
		rawURL = services.StripUsernameParam(rawURL)
	}

	return r.run(cmd, func(ctx context.Context) error {
		return r.errorHandler.HandleIdentity(businessAPI.Initialize(ctx, rawURL))
	})
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second // Default timeout
}

// applyFlagOverrides updates the configuration with the flags the user set
func (r *RootCommand) applyFlagOverrides() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		cfg, err := config.NewLoader().WithFile(path).Load()
		if err != nil {
			return err
		}
		r.config = cfg
	}

	overrides := &config.ConfigOverrides{}

	// Identity configuration
	if flags.Changed("url") {
		url, _ := flags.GetString("url")
		overrides.URL = &url
	}
	if flags.Changed("default-username") {
		username, _ := flags.GetString("default-username")
		overrides.DefaultUsername = &username
	}

	// Storage configuration
	if flags.Changed("store-backend") {
		backend, _ := flags.GetString("store-backend")
		overrides.StoreBackend = &backend
	}
	if flags.Changed("store-dir") {
		dir, _ := flags.GetString("store-dir")
		overrides.StoreDir = &dir
	}
	if flags.Changed("store-filename") {
		filename, _ := flags.GetString("store-filename")
		overrides.StoreFilename = &filename
	}
	if flags.Changed("store-write-timeout") {
		timeout, _ := flags.GetDuration("store-write-timeout")
		overrides.StoreWriteTimeout = &timeout
	}

	// Display configuration
	if flags.Changed("time-format") {
		format, _ := flags.GetString("time-format")
		overrides.TimeFormat = &format
	}
	if flags.Changed("recent-limit") {
		limit, _ := flags.GetInt("recent-limit")
		overrides.RecentLimit = &limit
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	overrides.Apply(r.config)
	return r.config.Validate()
}

// needsAPI reports whether cmd works with tasks or the username. Help and
// shell completion run without opening storage.
func needsAPI(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
