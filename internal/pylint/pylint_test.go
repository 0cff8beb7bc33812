package pylint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakePylint puts a shell script named pylint on PATH so Run picks it up
// instead of a real linter.
func fakePylint(t *testing.T, script string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "pylint")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunCleanExit(t *testing.T) {
	fakePylint(t, "exit 0")

	result, err := Run(context.Background(), "", []string{"src/"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ExitCode != 0 {
		t.Errorf("Expected exit code 0, but got %d", result.ExitCode)
	}

	if len(result.Diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, but got %d", len(result.Diagnostics))
	}
}

func TestRunUsageError(t *testing.T) {
	fakePylint(t, "echo 'this content must be ignored'\necho 'no such option: --bogus' >&2\nexit 32")

	_, err := Run(context.Background(), "", []string{"--bogus"})
	if err == nil {
		t.Fatal("Expected an error for exit code 32, but got nil")
	}

	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("Expected a *UsageError, but got %T: %v", err, err)
	}

	if usageErr.ExitCode != 32 {
		t.Errorf("Expected exit code 32, but got %d", usageErr.ExitCode)
	}

	if usageErr.Stderr != "no such option: --bogus" {
		t.Errorf("Expected stderr to be captured, but got %q", usageErr.Stderr)
	}
}

func TestRunDecodesDiagnostics(t *testing.T) {
	fakePylint(t, `printf '%s' '[{"type":"error","message":"bad","message-id":"E1","symbol":"bad-thing","path":"a.py","line":3,"column":1,"obj":"foo"}]'
exit 2`)

	result, err := Run(context.Background(), "", []string{"a.py"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ExitCode != 2 {
		t.Errorf("Expected exit code 2, but got %d", result.ExitCode)
	}

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, but got %d", len(result.Diagnostics))
	}

	d := result.Diagnostics[0]
	if d.Type != "error" || d.MessageID != "E1" || d.Symbol != "bad-thing" {
		t.Errorf("Diagnostic decoded wrong: %+v", d)
	}

	if d.Path != "a.py" || d.Line != 3 || d.Column != 1 {
		t.Errorf("Diagnostic location decoded wrong: %+v", d)
	}

	if d.Context() != "foo" {
		t.Errorf("Expected context 'foo', but got %q", d.Context())
	}
}

func TestRunNonUsageExitCodesAllDecode(t *testing.T) {
	// Pylint's exit status is a bit field; any non-zero, non-32 value means
	// findings and the buffer is decoded regardless of the specific code.
	fakePylint(t, `printf '%s' '[{"type":"convention","message":"m","message-id":"C0301","symbol":"line-too-long","path":"b.py","line":1,"column":0,"module":"b"}]'
exit 16`)

	result, err := Run(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ExitCode != 16 {
		t.Errorf("Expected exit code 16, but got %d", result.ExitCode)
	}

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, but got %d", len(result.Diagnostics))
	}

	if result.Diagnostics[0].Context() != "b" {
		t.Errorf("Expected module fallback context 'b', but got %q", result.Diagnostics[0].Context())
	}
}

func TestRunTruncatedOutput(t *testing.T) {
	fakePylint(t, `printf '%s' '[{"type":"err'
exit 4`)

	_, err := Run(context.Background(), "", nil)
	if err == nil {
		t.Fatal("Expected a decode error, but got nil")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected a *DecodeError, but got %T: %v", err, err)
	}

	if decodeErr.ExitCode != 4 {
		t.Errorf("Expected the original exit code 4 to be carried, but got %d", decodeErr.ExitCode)
	}
}

func TestRunMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Run(context.Background(), "definitely-not-pylint", nil)
	if err == nil {
		t.Fatal("Expected an error for a missing binary, but got nil")
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		t.Errorf("A missing binary must not look like a usage error: %v", err)
	}
}
