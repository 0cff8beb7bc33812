package args

import (
	"fmt"

	shellwords "github.com/mattn/go-shellwords"
)

// JSONOutputFlag forces machine-readable output. It is always appended last,
// so if the user supplied their own --output-format token pylint's last-wins
// handling decides between them.
const JSONOutputFlag = "--output-format=json"

// ParseError reports a configuration string whose shell quoting could not be
// tokenized.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse argument string %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Build tokenizes a shell-style argument string and appends the fixed JSON
// output flag. Quoted substrings with embedded spaces stay single tokens. An
// empty string yields just the output flag.
func Build(raw string) ([]string, error) {
	parser := shellwords.NewParser()
	tokens, err := parser.Parse(raw)
	if err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return append(tokens, JSONOutputFlag), nil
}
