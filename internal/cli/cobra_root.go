package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/api"
	"taskboard/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tb",
		Short: "A command-line client for the taskboard task-tracking API",
		Long: `Taskboard (tb) is a command-line client for a role-aware task-tracking service.

FEATURES:
  • Log in, register and manage your profile
  • List, search and filter tasks by text, status and priority
  • Create, update, assign and delete tasks (managers and admins)
  • Dashboard with server stats, recent tasks and task distributions
  • Fully configurable via a config file, environment variables and flags

EXAMPLES:
  tb login alice@example.com 'Passw0rd!'   # Authenticate and store the session
  tb list                                  # List all visible tasks
  tb list --status todo --priority high    # Filter by status and priority
  tb list --search "release"               # Filter with a text search
  tb search in_progress                    # Live search (also matches status text)
  tb create --title "Ship v2" --description "Cut the release" \
            --due 2026-09-15 --assignee <user-id>
  tb update <task-id> --status completed   # Move a task along
  tb dashboard                             # Stats, distributions, recent tasks
  tb logout                                # Clear the stored session

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment
  variables > config file (~/.tb/config.yaml) > defaults

  API Configuration:
    TB_API_BASE_URL                        API base URL (default: http://localhost:5000/api)
    TB_API_TIMEOUT                         Per-request timeout (default: 30s)

  State Configuration:
    TB_STATE_DIR                           Client state directory (default: ~/.tb)
    TB_STATE_FILENAME                      State database filename (default: tb.db)

  Display Configuration:
    TB_DISPLAY_RECENT_LIMIT                Recent tasks on the dashboard (default: 4)
    TB_TIME_DISPLAY_FORMAT                 Time format (default: 2006-01-02 15:04:05)

  Application Configuration:
    TB_APP_TIMEOUT                         Application timeout (default: 60s)
    TB_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tb [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Int("recent-limit", 0, "Recent tasks shown on the dashboard (overrides TB_DISPLAY_RECENT_LIMIT)")
	flags.String("time-format", "", "Time display format (overrides TB_TIME_DISPLAY_FORMAT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TB_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TB_APP_VERBOSE)")
}

// getConfigFromFlags applies flag overrides to the loaded configuration
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("recent-limit") {
		if limit, err := flags.GetInt("recent-limit"); err == nil {
			r.config.Display.RecentTaskLimit = limit
		}
	}
	if flags.Changed("time-format") {
		if format, err := flags.GetString("time-format"); err == nil {
			r.config.Display.TimeFormat = format
		}
	}
	if flags.Changed("app-timeout") {
		if timeout, err := flags.GetDuration("app-timeout"); err == nil {
			r.config.Application.Timeout = timeout
		}
	}
	if flags.Changed("verbose") {
		if verbose, err := flags.GetBool("verbose"); err == nil {
			r.config.Application.Verbose = verbose
		}
	}

	return r.config.Validate()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	return r.config.Application.Timeout
}

// newApp builds the command-handler app with the current configuration
func (r *RootCommand) newApp() *App {
	return NewApp(r.api, r.config)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Login command
	loginCmd := &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Log in and store the session",
		Long:  "Authenticate against the API. The bearer token is persisted so the session survives restarts until you log out.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewLoginCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Logout command
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewLogoutCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Register command
	registerCmd := &cobra.Command{
		Use:   "register [username] [email] [password] [confirm-password]",
		Short: "Create a new account",
		Long:  "Create a new account. Passwords must be at least 8 characters and include uppercase, lowercase, a number and a special character.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewRegisterCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Whoami command
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewWhoamiCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Profile command
	var profileUsername, profileEmail string
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewProfileCommand(r.newApp()).Execute(ctx, profileUsername, profileEmail)
		},
	}
	profileCmd.Flags().StringVar(&profileUsername, "username", "", "New username")
	profileCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")

	// Users command
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List users (for task assignment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewUsersCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// List command
	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with optional filters",
		Long:  "List tasks. Filters combine: a task is shown only if it matches the search text AND has an enabled status AND an enabled priority.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.newApp()).Execute(ctx, listOpts)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "Case-insensitive text search over title and description")
	listCmd.Flags().StringSliceVar(&listOpts.Statuses, "status", nil, "Show only these statuses (todo, in_progress, completed)")
	listCmd.Flags().StringSliceVar(&listOpts.Priorities, "priority", nil, "Show only these priorities (low, medium, high)")

	// Search command
	searchCmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "Search tasks by text",
		Long:  "Search tasks by text across title, description and status. Unlike 'list --search', this path matches status text and ignores the status/priority filters.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSearchCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Show command
	showCmd := &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewShowCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Create command
	var createFlags TaskFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task (managers and admins)",
		Long:  "Create a task. Title, description, due date and assignee are required and checked before anything is sent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCreateCommand(r.newApp()).Execute(ctx, createFlags)
		},
	}
	addTaskFlags(createCmd, &createFlags)

	// Update command
	var updateFlags TaskFlags
	updateCmd := &cobra.Command{
		Use:   "update [task-id]",
		Short: "Update a task",
		Long:  "Update a task. Managers and admins may edit every field; other roles may change the status only.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewUpdateCommand(r.newApp()).Execute(ctx, args[0], updateFlags)
		},
	}
	addTaskFlags(updateCmd, &updateFlags)

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task (managers and admins)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Dashboard command
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show stats, distributions and recent tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDashboardCommand(r.newApp()).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd, profileCmd, usersCmd,
		listCmd, searchCmd, showCmd, createCmd, updateCmd, deleteCmd, dashboardCmd)
}

// addTaskFlags registers the shared task field flags on a command
func addTaskFlags(cmd *cobra.Command, flags *TaskFlags) {
	cmd.Flags().StringVar(&flags.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&flags.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Priority, "priority", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&flags.Status, "status", "", "Status (todo, in_progress, completed)")
	cmd.Flags().StringVar(&flags.AssignedTo, "assignee", "", "Assignee user id")
}
