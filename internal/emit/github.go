// Package emit renders a finished run onto a host surface: GitHub Actions
// workflow commands on CI, colorized terminal output locally.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"lintbridge/internal/classify"
	"lintbridge/internal/report"
)

// Emitter renders one run's outcome.
type Emitter interface {
	// Failed marks the run failed with the summary as the message. Callers
	// invoke it exactly once, before any Annotate call.
	Failed(s report.Summary)
	Annotate(a report.Annotation)
}

// GitHub emits workflow commands through the actions toolkit, which handles
// the %/CR/LF escaping the command protocol requires.
type GitHub struct {
	action *githubactions.Action
}

func NewGitHub(action *githubactions.Action) *GitHub {
	return &GitHub{action: action}
}

func (g *GitHub) Failed(s report.Summary) {
	g.action.Errorf("%s", s.String())
}

func (g *GitHub) Annotate(a report.Annotation) {
	scoped := g.action.WithFieldsMap(map[string]string{
		"title":     a.Title,
		"file":      a.Path,
		"line":      strconv.Itoa(a.StartLine),
		"endLine":   strconv.Itoa(a.EndLine),
		"col":       strconv.Itoa(a.StartColumn),
		"endColumn": strconv.Itoa(a.EndColumn),
	})

	switch a.Channel {
	case report.ChannelError:
		scoped.Errorf("%s", a.Message)
	case report.ChannelWarning:
		scoped.Warningf("%s", a.Message)
	default:
		scoped.Noticef("%s", a.Message)
	}
}

// StepSummary appends a Markdown table of bucket counts to the job's step
// summary page.
func (g *GitHub) StepSummary(b *classify.Buckets) {
	var sb strings.Builder
	sb.WriteString("### Pylint findings\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("| --- | --- |\n")

	for _, severity := range classify.Order {
		if n := b.Count(severity); n > 0 {
			fmt.Fprintf(&sb, "| %s | %d |\n", severity, n)
		}
	}

	g.action.AddStepSummary(sb.String())
}
