package args

import (
	"errors"
	"testing"
)

func TestBuildEmptyString(t *testing.T) {
	tokens, err := Build("")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, but got %d: %v", len(tokens), tokens)
	}

	if tokens[0] != JSONOutputFlag {
		t.Errorf("Expected %q to be appended, but got %q", JSONOutputFlag, tokens[0])
	}
}

func TestBuildSplitsLikeShell(t *testing.T) {
	tokens, err := Build(`src/ --disable=C0114 --msg-template "line {line}"`)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{"src/", "--disable=C0114", "--msg-template", "line {line}", JSONOutputFlag}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, but got %d: %v", len(expected), len(tokens), tokens)
	}

	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("Token %d: expected %q, but got %q", i, want, tokens[i])
		}
	}
}

func TestBuildPreservesQuotedSpaces(t *testing.T) {
	tokens, err := Build(`'my file.py' other.py`)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tokens[0] != "my file.py" {
		t.Errorf("Expected quoted token to stay whole, but got %q", tokens[0])
	}

	if tokens[len(tokens)-1] != JSONOutputFlag {
		t.Errorf("Expected output flag to be last, but got %q", tokens[len(tokens)-1])
	}
}

func TestBuildAlwaysAppendsOutputFlagOnce(t *testing.T) {
	tokens, err := Build("--output-format=text src/")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// The user token is passed through untouched; pylint resolves the conflict.
	count := 0
	for _, tok := range tokens {
		if tok == JSONOutputFlag {
			count++
		}
	}

	if count != 1 {
		t.Errorf("Expected exactly one appended %q, but got %d", JSONOutputFlag, count)
	}

	if tokens[0] != "--output-format=text" {
		t.Errorf("Expected user token to survive, but got %q", tokens[0])
	}
}

func TestBuildMalformedQuoting(t *testing.T) {
	_, err := Build(`src/ "unterminated`)
	if err == nil {
		t.Fatal("Expected an error for unterminated quote, but got nil")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected a *ParseError, but got %T: %v", err, err)
	}

	if parseErr.Raw != `src/ "unterminated` {
		t.Errorf("Expected the raw string to be carried, but got %q", parseErr.Raw)
	}
}
