package report

import (
	"fmt"
	"strings"

	"lintbridge/internal/classify"
	"lintbridge/internal/pylint"
)

// Channel is the annotation surface a diagnostic lands on.
type Channel string

const (
	ChannelError   Channel = "error"
	ChannelWarning Channel = "warning"
	ChannelNotice  Channel = "notice"
)

// Annotation is one platform-native marker pointing at a single position:
// start line/column always equal end line/column.
type Annotation struct {
	Channel     Channel
	Title       string
	Path        string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
	Message     string
}

// Summary is the run's failure message: a title line naming the exact
// argument list, plus the non-empty bucket counts.
type Summary struct {
	Title  string
	Counts string
}

func (s Summary) String() string {
	if s.Counts == "" {
		return s.Title
	}
	return s.Title + "\n" + s.Counts
}

// BuildSummary renders the bucket counts as "<count> <severity>" for each
// non-empty bucket, in fixed severity order.
func BuildSummary(tokens []string, b *classify.Buckets) Summary {
	var parts []string
	for _, severity := range classify.Order {
		if n := b.Count(severity); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, severity))
		}
	}

	return Summary{
		Title:  "pylint " + strings.Join(tokens, " "),
		Counts: strings.Join(parts, ", "),
	}
}

// BuildAnnotations lays out one annotation per diagnostic: all errors first,
// then warning/refactor/convention merged onto the warning channel in their
// original relative order, then infos on the notice channel.
func BuildAnnotations(diags []pylint.Diagnostic, b *classify.Buckets) []Annotation {
	out := make([]Annotation, 0, b.Total())

	for _, d := range b.Errors {
		out = append(out, newAnnotation(d, ChannelError))
	}

	// A single pass over the combined stream keeps the three merged
	// severities in input order relative to each other.
	for _, d := range diags {
		switch d.Type {
		case classify.SeverityWarning, classify.SeverityRefactor, classify.SeverityConvention:
			out = append(out, newAnnotation(d, ChannelWarning))
		}
	}

	for _, d := range b.Infos {
		out = append(out, newAnnotation(d, ChannelNotice))
	}

	return out
}

func newAnnotation(d pylint.Diagnostic, channel Channel) Annotation {
	return Annotation{
		Channel:     channel,
		Title:       fmt.Sprintf("Linter %s %s (%s)", d.Type, d.MessageID, d.Symbol),
		Path:        d.Path,
		StartLine:   d.Line,
		EndLine:     d.Line,
		StartColumn: d.Column,
		EndColumn:   d.Column,
		Message:     fmt.Sprintf("%s\n\n%s (%s:%d:%d)", d.Message, d.Context(), d.Path, d.Line, d.Column),
	}
}
