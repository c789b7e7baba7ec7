// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "depfind version %s\n", orDefault(buildVersion, "dev"))
		if buildCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", buildCommit)
		}
		if buildDate != "" {
			fmt.Fprintf(out, "built: %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
