package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reachlab/geodash/internal/application/dashboard"
	"github.com/reachlab/geodash/internal/infrastructure/ingest"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
)

func newValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and aggregate the datasets without serving",
		Long:  "validate performs a dry run of the full ingest and aggregation pass and\nprints a summary, so a data drop can be checked before deployment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			source, err := newSource(cfg)
			if err != nil {
				return err
			}
			loader := ingest.NewLoader(source, cfg.Data, logging.NewNopLogger(), nil)

			ds, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			snap := dashboard.BuildSnapshot(ds)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "datasets OK (source %s)\n", source)
			fmt.Fprintf(out, "  print rows:        %d\n", len(ds.PrintRows))
			fmt.Fprintf(out, "  visitor rows:      %d\n", len(ds.VisitorRows))
			fmt.Fprintf(out, "  store rows:        %d\n", len(ds.StoreRows))
			fmt.Fprintf(out, "  boundary features: %d\n", len(ds.Boundaries.Features))
			fmt.Fprintf(out, "aggregated:\n")
			fmt.Fprintf(out, "  areas:   %d\n", len(snap.Index))
			fmt.Fprintf(out, "  stores:  %d\n", len(snap.Stores))
			fmt.Fprintf(out, "  vendors: %d\n", len(snap.Catalog))
			for _, vendor := range snap.Catalog {
				fmt.Fprintf(out, "    - %s\n", vendor)
			}
			return nil
		},
	}
}
