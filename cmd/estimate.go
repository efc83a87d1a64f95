package cmd

import (
	"context"

	"github.com/Nemesis2003/smartci-backend/internal/outwriter"
	"github.com/spf13/cobra"
)

// estimateCmd runs a one-shot estimation from the command line.
var estimateCmd = &cobra.Command{
	Use:   "estimate <repo-url>",
	Short: "Estimate savings for one repository and print the report",
	Long: `Run a single estimation without starting the server.

The repository is cloned shallowly, its recent commit pairs are replayed
through the analyzer, and the resulting report is printed as a table or
JSON depending on --output.

Examples:
  # Print a table
  smartci estimate https://github.com/acme/widgets

  # Write JSON to a file
  smartci estimate https://github.com/acme/widgets --output json --output-file report.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := rootCtx
		if cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
			defer cancel()
		}

		report, err := newPipeline().Estimate(ctx, args[0])
		if err != nil {
			return err
		}
		return outwriter.WriteReport(report, cfg)
	},
}
