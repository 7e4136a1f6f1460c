package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fulmenhq/docsweep/internal/sweep"
	"github.com/fulmenhq/docsweep/pkg/ascii"
)

const reportTitle = "📊 DEAD CODE DETECTION REPORT"

// TextWriter outputs the human-readable console report: one section per
// non-empty category, then a summary of counts or the clean message.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report
func (w *TextWriter) Write(report *sweep.Report) (int, error) {
	var b strings.Builder
	rule := ascii.Rule("=", 50, reportTitle)
	f := report.Findings

	b.WriteString("\n" + reportTitle + "\n")
	b.WriteString(rule + "\n")

	for _, s := range sections {
		issues := f.ByKind(s.kind)
		if len(issues) == 0 {
			continue
		}
		b.WriteString("\n" + s.header + "\n")
		for _, issue := range issues {
			if issue.Kind == sweep.KindPossibleTypo {
				fmt.Fprintf(&b, "  %s%s → %s\n", s.marker, issue.Referenced, typoDetail(issue))
				fmt.Fprintf(&b, "     %s\n", issue.Message)
				continue
			}
			fmt.Fprintf(&b, "  %s%s - %s\n", s.marker, issue.Subject(), issue.Message)
		}
	}

	if f.Empty() {
		b.WriteString("\n✅ " + CleanMessage + "\n")
	} else {
		b.WriteString("\n📈 SUMMARY:\n")
		for _, s := range sections {
			fmt.Fprintf(&b, "  • %s: %d\n", s.label, len(f.ByKind(s.kind)))
		}
	}

	b.WriteString("\n" + rule + "\n")
	return io.WriteString(w.output, b.String())
}
