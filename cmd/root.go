package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"
const PROJECT_NAME = "LintBridge"

var (
	quiet   bool
	verbose bool
)

// errRunFailed marks a run whose outcome was already reported to the host
// surface; Execute exits non-zero without printing it again.
var errRunFailed = errors.New("run failed")

var rootCmd = &cobra.Command{
	Use:   "lintbridge",
	Short: "Bridge pylint findings into GitHub Actions annotations",
	Long: `LintBridge runs pylint, decodes its JSON diagnostics and surfaces them
as GitHub Actions annotations with a severity-count summary. Outside of
Actions the same report renders on the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}
