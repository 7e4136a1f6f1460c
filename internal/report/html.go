package report

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aymerick/raymond"
	"github.com/fulmenhq/docsweep/internal/assets"
	"github.com/fulmenhq/docsweep/internal/sweep"
)

// HTMLWriter renders the embedded Handlebars report template
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{baseWriter: newBaseWriter(output)}
}

// TemplateData is the context passed to the HTML template
type TemplateData struct {
	Title    string
	Project  ProjectInfo
	Metadata TemplateMetadata
	Summary  []SummaryCard
	Clean    bool
	Sections []TemplateSection
}

type ProjectInfo struct {
	Name        string
	DisplayPath string
}

type TemplateMetadata struct {
	Version       string
	GeneratedAt   string
	ExecutionTime string
}

type SummaryCard struct {
	Label string
	Count int
}

type TemplateSection struct {
	Title string
	Count int
	Rows  []TemplateRow
}

type TemplateRow struct {
	Path   string
	Detail string
}

// Write renders the report as a standalone HTML page
func (w *HTMLWriter) Write(report *sweep.Report) (int, error) {
	tpl, err := assets.HTMLReportTemplate()
	if err != nil {
		return 0, fmt.Errorf("failed to load HTML template: %w", err)
	}
	out, err := renderHandlebars(string(tpl), buildTemplateData(report))
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, out)
}

func buildTemplateData(report *sweep.Report) TemplateData {
	f := report.Findings
	data := TemplateData{
		Title: "Dead Code Detection Report",
		Project: ProjectInfo{
			Name:        filepath.Base(report.Metadata.Root),
			DisplayPath: displayPath(report.Metadata.Root),
		},
		Metadata: TemplateMetadata{
			Version:       report.Metadata.Version,
			GeneratedAt:   report.Metadata.GeneratedAt.Format(time.RFC3339),
			ExecutionTime: report.Metadata.ExecutionTime.Round(time.Millisecond).String(),
		},
		Clean: f.Empty(),
	}

	for _, s := range sections {
		issues := f.ByKind(s.kind)
		data.Summary = append(data.Summary, SummaryCard{Label: s.label, Count: len(issues)})
		if len(issues) == 0 {
			continue
		}
		ts := TemplateSection{Title: title(s.kind), Count: len(issues)}
		for _, issue := range issues {
			row := TemplateRow{Path: issue.Subject(), Detail: issue.Message}
			if issue.Kind == sweep.KindPossibleTypo {
				row.Detail = "did you mean " + typoDetail(issue) + "?"
			}
			ts.Rows = append(ts.Rows, row)
		}
		data.Sections = append(data.Sections, ts)
	}
	return data
}

// renderHandlebars parses and executes a template without touching
// raymond's global helper registry.
func renderHandlebars(tpl string, data interface{}) (string, error) {
	t, err := raymond.Parse(tpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML template: %w", err)
	}
	out, err := t.Exec(data)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}
	return out, nil
}
