package pylint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the executable name used when no override is configured.
const DefaultBinary = "pylint"

// usageExitCode is pylint's fixed exit code for a bad invocation, as opposed
// to having found issues in scanned code.
const usageExitCode = 32

// UsageError means pylint itself was invoked incorrectly. Nothing in the
// output buffer is trustworthy, so no diagnostics are reported for the run.
type UsageError struct {
	ExitCode int
	Stderr   string
}

func (e *UsageError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("pylint usage error (exit code %d)", e.ExitCode)
	}
	return fmt.Sprintf("pylint usage error (exit code %d): %s", e.ExitCode, e.Stderr)
}

// DecodeError means pylint exited non-zero as if it had found issues, but the
// captured output was not a valid JSON diagnostic list.
type DecodeError struct {
	ExitCode int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode pylint output (exit code %d): %v", e.ExitCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RunResult is the outcome of one pylint invocation.
type RunResult struct {
	Diagnostics []Diagnostic
	ExitCode    int
}

// Run executes pylint with the given tokens in the current working directory,
// accumulating stdout until the process exits. The exit code is the sole
// control signal:
//
//   - 0: clean run, no diagnostics.
//   - 32: usage error, fatal, buffer ignored.
//   - anything else non-zero: diagnostics were found; the buffer is decoded
//     as a JSON array regardless of the specific code.
func Run(ctx context.Context, binary string, tokens []string) (*RunResult, error) {
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, tokens...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &RunResult{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s: %w", binary, err)
	}

	// Match on the code itself, not on error message text.
	code := exitErr.ExitCode()
	if code == usageExitCode {
		return nil, &UsageError{ExitCode: code, Stderr: strings.TrimSpace(stderr.String())}
	}

	var diags []Diagnostic
	if err := json.Unmarshal(stdout.Bytes(), &diags); err != nil {
		return nil, &DecodeError{ExitCode: code, Err: err}
	}

	return &RunResult{Diagnostics: diags, ExitCode: code}, nil
}
