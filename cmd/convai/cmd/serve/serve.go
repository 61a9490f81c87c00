package serve

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"convai/internal/app"
	"convai/internal/config"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second,
		"how long in-flight requests may take to finish on shutdown")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server

- Serves the single page with the recorder, the upload form and the text form
- Lists stored transcripts and synthesized audio
- Stops gracefully on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.InitializeConfig(path)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv, cleanup, err := app.InitializeServer(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		return srv.Run(ctx, shutdownTimeout)
	},
}
