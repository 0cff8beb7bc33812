// Package action ties the pipeline together: build arguments, run pylint,
// classify its diagnostics, and lay out the report. The result is an explicit
// value the caller translates into the host's status signal.
package action

import (
	"context"

	"lintbridge/internal/args"
	"lintbridge/internal/classify"
	"lintbridge/internal/config"
	"lintbridge/internal/pylint"
	"lintbridge/internal/report"
)

// Result is the outcome of one run. Failed is true exactly when pylint
// reported diagnostics; fatal conditions surface as errors instead.
type Result struct {
	Tokens      []string
	ExitCode    int
	Diagnostics []pylint.Diagnostic
	Buckets     *classify.Buckets
	Summary     report.Summary
	Annotations []report.Annotation
	Failed      bool
}

// Run executes the whole pipeline once. Errors out of here are one of
// *args.ParseError, *pylint.UsageError, *pylint.DecodeError, or a wrapped
// failure to start the subprocess.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	tokens, err := args.Build(cfg.Args)
	if err != nil {
		return nil, err
	}

	run, err := pylint.Run(ctx, cfg.Binary, tokens)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Tokens:      tokens,
		ExitCode:    run.ExitCode,
		Diagnostics: run.Diagnostics,
	}

	if len(run.Diagnostics) == 0 {
		return result, nil
	}

	result.Buckets = classify.Partition(run.Diagnostics)
	result.Summary = report.BuildSummary(tokens, result.Buckets)
	result.Annotations = report.BuildAnnotations(run.Diagnostics, result.Buckets)
	result.Failed = true

	return result, nil
}
