// Package cli defines the geodash command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reachlab/geodash/internal/config"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "geodash",
		Short:   "geodash is the geographic print-campaign dashboard backend",
		Long:    "geodash ingests print distribution, visitor, and store location data,\nreconciles them by postal area with multi-vendor overlap resolution, and\nserves efficiency metrics and choropleth styles to the dashboard front end.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: env-only configuration)")

	cmd.AddCommand(
		newServeCommand(opts),
		newValidateCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// loadConfig resolves configuration from the --config file when given,
// otherwise from GEODASH_* environment variables.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
