// geodash is the dashboard backend binary: `geodash serve` runs the API
// server, `geodash validate` dry-runs an ingest pass.
package main

import (
	"fmt"
	"os"

	"github.com/reachlab/geodash/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
