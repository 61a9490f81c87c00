package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"convai/internal/app"
	"convai/internal/app/export"
	"convai/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	_ = Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transcripts and synthesized audio to excel",
	Long: `Export stored transcripts and synthesized audio to excel

- One sheet lists the recordings with their transcript and sentiment
- One sheet lists the synthesized MP3 files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.InitializeConfig(path)
		if err != nil {
			return err
		}

		stores, err := app.InitializeStores(cfg)
		if err != nil {
			return err
		}

		catalogue, err := export.Collect(stores.Uploads, stores.Audio)
		if err != nil {
			return err
		}
		if err := export.ToExcel(catalogue, outputFilePath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
