package report

import (
	"io"
	"strconv"
	"time"

	"github.com/fulmenhq/docsweep/internal/sweep"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format, suitable for CI job
// summaries and pull request comments.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *sweep.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report.Findings)
	for _, s := range sections {
		w.writeSection(md, s.kind, report.Findings.ByKind(s.kind))
	}

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *sweep.Report) {
	md.H1("Dead Code Detection Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", "`" + displayPath(report.Metadata.Root) + "`"},
			{"Generated", report.Metadata.GeneratedAt.Format(time.RFC3339)},
			{"docsweep", report.Metadata.Version},
			{"Declared links", strconv.Itoa(report.Stats.DeclaredLinks)},
			{"Documentation files", strconv.Itoa(report.Stats.DocFiles)},
			{"Assets", strconv.Itoa(report.Stats.Assets)},
			{"Asset references", strconv.Itoa(report.Stats.AssetReferences)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, f sweep.Findings) {
	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(sections)+1)
	for _, s := range sections {
		rows = append(rows, []string{s.label, strconv.Itoa(len(f.ByKind(s.kind)))})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(f.Total()) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if f.Empty() {
		md.Tip(CleanMessage)
	} else {
		md.Warningf("%d issue(s) found. Navigation, content and assets are out of sync.", f.Total())
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeSection(md *markdown.Markdown, kind sweep.Kind, issues []sweep.Issue) {
	if len(issues) == 0 {
		return
	}
	md.H2(title(kind))
	md.PlainText("")

	if kind == sweep.KindPossibleTypo {
		rows := make([][]string, len(issues))
		for i, issue := range issues {
			rows[i] = []string{
				"`" + issue.Referenced + "`",
				"`" + issue.Existing + "`",
				strconv.Itoa(issue.Similarity) + "%",
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Referenced", "Existing", "Similarity"},
			Rows:   rows,
		})
		md.PlainText("")
		return
	}

	rows := make([][]string, len(issues))
	for i, issue := range issues {
		rows[i] = []string{"`" + issue.Subject() + "`", issue.Message}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Path", "Message"},
		Rows:   rows,
	})
	md.PlainText("")
}
