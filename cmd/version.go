package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		showVersion()
	},
}

func showVersion() {
	fmt.Printf("🌉 %s v%s\n", PROJECT_NAME, VERSION)
	fmt.Printf("Bridge your linter findings into pull request annotations\n")
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
