package cmd

import (
	"os/signal"
	"syscall"

	"github.com/Nemesis2003/smartci-backend/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the SmartCI HTTP API server.

Endpoints:
  GET  /        - Service banner
  GET  /health  - Health check
  POST /analyze - Analyze a repository and return the savings estimate

Each analyze request clones the repository shallowly, replays its recent
commit pairs through the analyzer, and returns simulated CI timings with a
projected monthly dollar saving.

Examples:
  # Serve on the default address (:8000)
  smartci serve

  # Serve on a custom port with run tracking
  smartci serve --addr :9090 --runs-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		handlers := server.NewHandlers(newPipeline(), cfg.RequestTimeout)
		return server.Run(ctx, cfg.ListenAddr, handlers)
	},
}
