package synthesize

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"convai/internal/app"
	"convai/internal/config"
)

var text string

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "text to synthesize (defaults to the arguments)")
}

// Cmd represents the synthesize command
var Cmd = &cobra.Command{
	Use:   "synthesize [text...]",
	Short: "Synthesize text into a stored MP3",
	Long: `Synthesize text into a stored MP3

- Stores the result in the audio directory, next to files made by the web form
- Prints the sentiment summary in the sentiment variant`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := text
		if input == "" {
			input = strings.Join(args, " ")
		}

		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.InitializeConfig(path)
		if err != nil {
			return err
		}

		p, cleanup, err := app.InitializePipeline(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := p.Synthesize(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Audio generated and saved as %s\n", result.AudioName)
		if result.Sentiment != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.Sentiment)
		}
		return nil
	},
}
