package classify

import (
	"strings"

	"github.com/sajari/fuzzy"

	"lintbridge/internal/pylint"
)

// Severity names match pylint's type vocabulary exactly.
const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeverityConvention = "convention"
	SeverityRefactor   = "refactor"
	SeverityInfo       = "info"
)

// Order is the fixed reporting order for the five buckets.
var Order = []string{
	SeverityError,
	SeverityWarning,
	SeverityConvention,
	SeverityRefactor,
	SeverityInfo,
}

// Buckets partitions one run's diagnostics by severity. Relative order within
// each bucket follows the order pylint emitted them.
type Buckets struct {
	Errors      []pylint.Diagnostic
	Warnings    []pylint.Diagnostic
	Conventions []pylint.Diagnostic
	Refactors   []pylint.Diagnostic
	Infos       []pylint.Diagnostic
}

// Partition filters diagnostics into the five severity buckets by exact match
// on the type field. Diagnostics with an unrecognized type land in no bucket.
func Partition(diags []pylint.Diagnostic) *Buckets {
	b := &Buckets{}
	for _, d := range diags {
		switch d.Type {
		case SeverityError:
			b.Errors = append(b.Errors, d)
		case SeverityWarning:
			b.Warnings = append(b.Warnings, d)
		case SeverityConvention:
			b.Conventions = append(b.Conventions, d)
		case SeverityRefactor:
			b.Refactors = append(b.Refactors, d)
		case SeverityInfo:
			b.Infos = append(b.Infos, d)
		}
	}
	return b
}

// Count returns the size of the named bucket.
func (b *Buckets) Count(severity string) int {
	switch severity {
	case SeverityError:
		return len(b.Errors)
	case SeverityWarning:
		return len(b.Warnings)
	case SeverityConvention:
		return len(b.Conventions)
	case SeverityRefactor:
		return len(b.Refactors)
	case SeverityInfo:
		return len(b.Infos)
	}
	return 0
}

// Total returns the number of diagnostics across all buckets, which can be
// smaller than the input when unrecognized types were present.
func (b *Buckets) Total() int {
	total := 0
	for _, severity := range Order {
		total += b.Count(severity)
	}
	return total
}

// Known reports whether a type value belongs to the severity vocabulary.
func Known(severity string) bool {
	for _, s := range Order {
		if s == severity {
			return true
		}
	}
	return false
}

// Unknown returns the diagnostics excluded from every bucket, preserving
// input order.
func Unknown(diags []pylint.Diagnostic) []pylint.Diagnostic {
	var out []pylint.Diagnostic
	for _, d := range diags {
		if !Known(d.Type) {
			out = append(out, d)
		}
	}
	return out
}

var severityModel = newSeverityModel()

func newSeverityModel() *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.Train(Order)
	return model
}

// SuggestSeverity returns the closest known severity name for an unrecognized
// type value, or "" when nothing is close enough to be worth mentioning.
func SuggestSeverity(severity string) string {
	suggestions := severityModel.Suggestions(strings.ToLower(severity), false)
	if len(suggestions) == 0 {
		return ""
	}
	return suggestions[0]
}
