package emit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"lintbridge/internal/report"
)

// Console renders the same run outcome for a local terminal.
type Console struct {
	Verbose bool
	Out     io.Writer
}

func NewConsole(verbose bool) *Console {
	return &Console{Verbose: verbose, Out: os.Stdout}
}

func (c *Console) Failed(s report.Summary) {
	fmt.Fprintf(c.Out, "%s %s\n", color.RedString("✗"), color.New(color.Bold).Sprint(s.Title))
	fmt.Fprintf(c.Out, "  %s\n", s.Counts)
}

func (c *Console) Annotate(a report.Annotation) {
	var tag string
	switch a.Channel {
	case report.ChannelError:
		tag = color.RedString("[ERROR]")
	case report.ChannelWarning:
		tag = color.YellowString("[WARN] ")
	default:
		tag = color.CyanString("[NOTE] ")
	}

	fmt.Fprintf(c.Out, "%s %s:%d:%d %s\n", tag, a.Path, a.StartLine, a.StartColumn, a.Title)

	if c.Verbose {
		for _, line := range strings.Split(a.Message, "\n") {
			fmt.Fprintf(c.Out, "        %s\n", line)
		}
	}
}
