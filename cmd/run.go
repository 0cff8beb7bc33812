package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"

	"lintbridge/internal/action"
	"lintbridge/internal/args"
	"lintbridge/internal/classify"
	"lintbridge/internal/config"
	"lintbridge/internal/emit"
	"lintbridge/internal/pylint"
)

var (
	argsFlag   string
	binaryFlag string
	configFlag string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run pylint and report its findings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}

		var gh *githubactions.Action
		if onGitHubActions() {
			gh = githubactions.New()
		}
		applyOverrides(cfg, gh)

		if verbose && !quiet {
			fmt.Printf("🌉 Running %s with args: %q\n", cfg.Binary, cfg.Args)
		}

		result, err := action.Run(cmd.Context(), cfg)
		if err != nil {
			return reportFatal(gh, err)
		}

		if !result.Failed {
			if gh == nil && !quiet {
				fmt.Printf("%s pylint found no issues\n", color.GreenString("✓"))
			}
			return nil
		}

		emitResult(gh, result)
		return errRunFailed
	},
}

func init() {
	runCmd.Flags().StringVar(&argsFlag, "args", "", "Shell-style argument string passed to pylint")
	runCmd.Flags().StringVar(&binaryFlag, "binary", "", "Pylint executable to invoke (default: pylint)")
	runCmd.Flags().StringVar(&configFlag, "config", "", "Path to a .lintbridge.yml defaults file")
	rootCmd.AddCommand(runCmd)
}

func onGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

func loadRunConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.LoadConfigFromFile(configFlag)
	}
	return config.LoadConfig()
}

// applyOverrides layers the run configuration: flag over action input over
// defaults file.
func applyOverrides(cfg *config.Config, gh *githubactions.Action) {
	if argsFlag != "" {
		cfg.Args = argsFlag
	} else if gh != nil {
		if v := gh.GetInput("args"); v != "" {
			cfg.Args = v
		}
	}

	if binaryFlag != "" {
		cfg.Binary = binaryFlag
	}
}

// reportFatal surfaces the fatal error kinds. Parse and usage errors abort
// with no diagnostics reported; a decode failure still fails the run but is
// logged as its own entry beside the original exit signal.
func reportFatal(gh *githubactions.Action, err error) error {
	var decodeErr *pylint.DecodeError
	if errors.As(err, &decodeErr) {
		first := fmt.Sprintf("pylint exited with code %d but its findings could not be reported", decodeErr.ExitCode)
		second := fmt.Sprintf("failed to decode pylint output: %v", decodeErr.Unwrap())

		if gh != nil {
			gh.Errorf("%s", first)
			gh.Errorf("%s", second)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), first)
			fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), second)
		}
		return errRunFailed
	}

	var parseErr *args.ParseError
	var usageErr *pylint.UsageError
	if gh != nil && (errors.As(err, &parseErr) || errors.As(err, &usageErr)) {
		gh.Errorf("%v", err)
		return errRunFailed
	}

	return err
}

func emitResult(gh *githubactions.Action, result *action.Result) {
	var emitter emit.Emitter
	var github *emit.GitHub

	if gh != nil {
		github = emit.NewGitHub(gh)
		emitter = github
	} else {
		emitter = emit.NewConsole(verbose)
	}

	// The failure status carries the summary and is set before any
	// per-diagnostic annotation goes out.
	emitter.Failed(result.Summary)

	var bar *progressbar.ProgressBar
	if gh == nil && !quiet {
		bar = progressbar.Default(int64(len(result.Annotations)))
	}

	for _, a := range result.Annotations {
		emitter.Annotate(a)
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	if github != nil {
		github.StepSummary(result.Buckets)
	}

	if gh == nil && verbose {
		for _, d := range classify.Unknown(result.Diagnostics) {
			hint := ""
			if s := classify.SuggestSeverity(d.Type); s != "" {
				hint = fmt.Sprintf(" (closest known severity: %s)", s)
			}
			fmt.Printf("%s unknown diagnostic type %q at %s:%d; not annotated%s\n",
				color.YellowString("!"), d.Type, d.Path, d.Line, hint)
		}
	}
}
