package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todopane/pkg/commands"
	"todopane/pkg/ui"
	"todopane/pkg/utils"
)

// NewRootCommand builds the todopane command tree. Without a subcommand the
// interactive pane is started.
func NewRootCommand() *cobra.Command {
	args := &Args{}

	rootCmd := &cobra.Command{
		Use:           "todopane",
		Short:         "A single-pane to-do list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			utils.InitLogger(args.Verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			utils.CloseLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				p := tea.NewProgram(ui.NewModel(s.Bridge, s.Bridge, s.cfg), tea.WithAltScreen())
				_, err := p.Run()
				return err
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&args.ConfigPath, "config", "", "path to configuration file")
	flags.StringVar(&args.Database, "database", "", "database file or connection string")
	flags.StringVar(&args.Driver, "driver", "", "database driver (sqlite3, postgres)")
	flags.BoolVar(&args.Verbose, "verbose", false, "enable verbose logging")
	flags.BoolVar(&args.Memory, "memory", false, "keep tasks in memory only")

	rootCmd.AddCommand(
		newAddCommand(args),
		newListCommand(args),
		newExportCommand(args),
		newImportCommand(args),
		newClearCommand(args),
	)

	return rootCmd
}

func newAddCommand(args *Args) *cobra.Command {
	var opts commands.AddOptions
	cmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				return commands.HandleAddTask(ctx, s, cmd.OutOrStdout(), positional[0], opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "low", "priority (low, medium, high)")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "category")
	return cmd
}

func newListCommand(args *Args) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				return commands.HandleListCommand(ctx, s, cmd.OutOrStdout(), filter)
			})
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show tasks containing this text")
	return cmd
}

func newExportCommand(args *Args) *cobra.Command {
	var exportType string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export tasks to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				return commands.HandleExportCommand(ctx, s, cmd.OutOrStdout(), positional[0], exportType)
			})
		},
	}
	cmd.Flags().StringVarP(&exportType, "type", "t", "json", "export file type (json, yaml, txt)")
	return cmd
}

func newImportCommand(args *Args) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import tasks from a json, yaml or txt file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				return commands.HandleImportCommand(ctx, s, cmd.OutOrStdout(), positional[0])
			})
		},
	}
}

func newClearCommand(args *Args) *cobra.Command {
	var opts commands.ClearOptions
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, args, func(ctx context.Context, s *session) error {
				return commands.HandleClearCommand(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.DoneOnly, "done", false, "only delete completed tasks")
	cmd.Flags().BoolVarP(&opts.SkipConfirm, "yes", "y", false, "skip confirmation")
	return cmd
}
