// Package report renders sweep results as text, Markdown, JSON or HTML.
//
// Every writer implements Writer, so the check command picks one by format
// name and never needs to know which it got.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docsweep/internal/sweep"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format names an output format
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatHTML}

// ParseFormat accepts a format name, case-insensitively, plus the aliases
// "md" and "txt".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported format %q (valid: text, markdown, json, html)", s)
}

// Writer outputs a report.
// Write returns the number of bytes written and any error encountered.
type Writer interface {
	Write(report *sweep.Report) (int, error)
}

// New returns the writer for format, writing to output
func New(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatHTML:
		return NewHTMLWriter(output), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// section describes how one finding category is presented
type section struct {
	kind   sweep.Kind
	header string // text report heading
	label  string // summary label
	marker string // per-line prefix in the text report
}

var sections = []section{
	{sweep.KindDeadFile, "🗂️  DEAD FILES (exist but not referenced):", "Dead files", "❌ "},
	{sweep.KindBrokenLink, "🔗 BROKEN LINKS (referenced but don't exist):", "Broken links", "❌ "},
	{sweep.KindPossibleTypo, "✏️  POSSIBLE TYPOS:", "Possible typos", "⚠️  "},
	{sweep.KindUnusedAsset, "🖼️  UNUSED ASSETS:", "Unused assets", "⚠️  "},
}

// CleanMessage is printed when a sweep finds nothing
const CleanMessage = "No dead code or unused files detected!"

// title turns a kind such as "possible-typo" into "Possible Typos"
func title(k sweep.Kind) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(k), "-", " ")) + "s"
}

// displayPath shortens paths under the home directory to ~/...
func displayPath(p string) string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" && strings.HasPrefix(p, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(p, home)
	}
	return p
}

// typoDetail renders a typo candidate as "existing (N% similar)"
func typoDetail(i sweep.Issue) string {
	return fmt.Sprintf("%s (%d%% similar)", i.Existing, i.Similarity)
}
