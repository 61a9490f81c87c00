package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"convai/internal/app/speech"
)

var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of convai",
	Long:  `Print the version number of convai and the speech providers compiled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion(cmd)
		return nil
	},
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, version)
	for _, kind := range []string{"stt", "tts", "sentiment"} {
		fmt.Fprintf(out, "  %-9s %s\n", kind, strings.Join(speech.ListRegistered()[kind], ", "))
	}
}
