package report

import (
	"encoding/json"
	"io"

	"github.com/fulmenhq/docsweep/internal/sweep"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type jsonSummary struct {
	Total         int  `json:"total"`
	Clean         bool `json:"clean"`
	DeadFiles     int  `json:"dead_files"`
	BrokenLinks   int  `json:"broken_links"`
	PossibleTypos int  `json:"possible_typos"`
	UnusedAssets  int  `json:"unused_assets"`
}

type jsonDocument struct {
	Metadata sweep.Metadata `json:"metadata"`
	Stats    sweep.Stats    `json:"stats"`
	Summary  jsonSummary    `json:"summary"`
	Findings sweep.Findings `json:"findings"`
}

// Write outputs the report in JSON format. Empty categories are encoded as
// [] rather than null.
func (w *JSONWriter) Write(report *sweep.Report) (int, error) {
	f := report.Findings
	doc := jsonDocument{
		Metadata: report.Metadata,
		Stats:    report.Stats,
		Summary: jsonSummary{
			Total:         f.Total(),
			Clean:         f.Empty(),
			DeadFiles:     len(f.DeadFiles),
			BrokenLinks:   len(f.BrokenLinks),
			PossibleTypos: len(f.PossibleTypos),
			UnusedAssets:  len(f.UnusedAssets),
		},
		Findings: sweep.Findings{
			DeadFiles:     nonNil(f.DeadFiles),
			BrokenLinks:   nonNil(f.BrokenLinks),
			PossibleTypos: nonNil(f.PossibleTypos),
			UnusedAssets:  nonNil(f.UnusedAssets),
		},
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(doc, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

func nonNil(issues []sweep.Issue) []sweep.Issue {
	if issues == nil {
		return []sweep.Issue{}
	}
	return issues
}
