package transcribe

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"convai/internal/app"
	"convai/internal/app/progress"
	"convai/internal/config"
)

var (
	showProgress bool
	dryRun       bool
)

func init() {
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "force the progress bar even without a terminal")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only list the recordings that have no transcript")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe stored recordings that have no transcript yet",
	Long: `Transcribe stored recordings that have no transcript yet

- Looks for audio in the upload directory without a .txt sidecar
- Transcribes them one by one, appending sentiment in the sentiment variant
- Recordings that fail get no sidecar and are picked up again on the next run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.InitializeConfig(path)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, cleanup, err := app.InitializePipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if dryRun {
			pending, err := p.Pending()
			if err != nil {
				return err
			}
			for _, name := range pending {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		tracker := progress.NewTracker("Transcribing", progress.Config{
			Enabled: progress.ShouldShow(showProgress),
			Writer:  cmd.ErrOrStderr(),
		})
		result, err := p.Backfill(ctx, tracker)
		tracker.Wait()
		if err != nil {
			return err
		}

		failed := tracker.Failed()
		fmt.Fprintf(cmd.OutOrStdout(), "transcribed %d recordings, %d failed\n", len(result.Transcribed), failed)
		if failed > 0 {
			return fmt.Errorf("%d recordings could not be transcribed", failed)
		}
		return nil
	},
}
