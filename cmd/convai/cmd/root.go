package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"convai/cmd/convai/cmd/export"
	"convai/cmd/convai/cmd/serve"
	"convai/cmd/convai/cmd/synthesize"
	"convai/cmd/convai/cmd/transcribe"
	"convai/cmd/convai/cmd/version"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "convai",
	Short: "A small web app that turns speech into text and text into speech",
	Long: `A small web app that turns speech into text and text into speech.
- Record or upload audio, it is stored and transcribed into a .txt sidecar
- Type text, it is synthesized into an MP3 you can play back
- The sentiment variant also scores every transcript and text`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(synthesize.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML config file (environment variables override it)")
}
