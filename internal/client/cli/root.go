package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the lifelog command tree. Settings come from the
// defaults, then the JSON file given by -c, then the flags.
func NewRootCommand() *cobra.Command {
	a := newApp()
	return newRootCommand(a, config.LoadConfig(), a.open)
}

func newRootCommand(a *App, cfg *config.Config, open func(ctx context.Context, cfg *config.Config) error) *cobra.Command {
	var (
		timeout    int
		configPath string
	)

	root := &cobra.Command{
		Use:           "lifelog",
		Short:         "Personal life log: journals, memories, tastes, places and photos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("timeout") {
				cfg.RequestTimeout = time.Duration(timeout) * time.Second
			}
			return open(cmd.Context(), cfg)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.Close()
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&cfg.ServerURL, "server", "a", cfg.ServerURL, "API server URL")
	f.StringVarP(&cfg.LocalDBPath, "db", "l", cfg.LocalDBPath, "local database file")
	f.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (default stderr)")
	f.IntVarP(&timeout, "timeout", "i", int(cfg.RequestTimeout/time.Second), "request timeout in seconds")
	// Read before the tree is built; declared so that cobra accepts it.
	f.StringVarP(&configPath, "config", "c", "", "JSON config file")

	addCommands(root, a)
	root.AddCommand(newShellCommand(a))
	return root
}

// addCommands attaches every command that works on an opened app.
func addCommands(root *cobra.Command, a *App) {
	root.AddCommand(
		newLoginCommand(a),
		newRegisterCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newDashboardCommand(a),
		newJournalsCommand(a),
		newMemoriesCommand(a),
		newTastesCommand(a),
		newPlacesCommand(a),
		newPhasesCommand(a),
		newPhotosCommand(a),
	)
}
