package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fulmenhq/docsweep/internal/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestReport creates a report with one issue per category
func createTestReport() *sweep.Report {
	return &sweep.Report{
		Metadata: sweep.Metadata{
			Root:          "/work/gdg-docs",
			Version:       "1.2.3",
			GeneratedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			ExecutionTime: 42 * time.Millisecond,
		},
		Stats: sweep.Stats{DeclaredLinks: 3, DocFiles: 3, Assets: 2, AssetReferences: 1},
		Findings: sweep.Findings{
			DeadFiles: []sweep.Issue{
				{Kind: sweep.KindDeadFile, File: "overview/orphan", Message: "File exists but is not referenced in navigation"},
			},
			BrokenLinks: []sweep.Issue{
				{Kind: sweep.KindBrokenLink, Link: "react/routing", Message: "Referenced in navigation but file doesn't exist"},
			},
			PossibleTypos: []sweep.Issue{
				{
					Kind:       sweep.KindPossibleTypo,
					Referenced: "react/routing",
					Existing:   "react/rooting",
					Similarity: 92,
					Message:    `Possible typo: "react/routing" referenced but "react/rooting" exists`,
				},
			},
			UnusedAssets: []sweep.Issue{
				{Kind: sweep.KindUnusedAsset, File: "unused-icon.svg", Message: "Asset exists but appears to be unused"},
			},
		},
	}
}

func cleanReport() *sweep.Report {
	r := createTestReport()
	r.Findings = sweep.Findings{}
	return r
}

func render(t *testing.T, format Format, r *sweep.Report) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := New(format, &buf)
	require.NoError(t, err)
	n, err := w.Write(r)
	require.NoError(t, err)
	assert.Positive(t, n)
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{"TXT", FormatText, true},
		{"md", FormatMarkdown, true},
		{"Markdown", FormatMarkdown, true},
		{"json", FormatJSON, true},
		{" html ", FormatHTML, true},
		{"xml", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Format("yaml"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextWriter(t *testing.T) {
	t.Run("issues", func(t *testing.T) {
		out := render(t, FormatText, createTestReport())

		assert.Contains(t, out, "📊 DEAD CODE DETECTION REPORT\n"+strings.Repeat("=", 50)+"\n")
		assert.Contains(t, out, "🗂️  DEAD FILES (exist but not referenced):\n  ❌ overview/orphan - File exists but is not referenced in navigation\n")
		assert.Contains(t, out, "🔗 BROKEN LINKS (referenced but don't exist):\n  ❌ react/routing - Referenced in navigation but file doesn't exist\n")
		assert.Contains(t, out, "  ⚠️  react/routing → react/rooting (92% similar)\n     Possible typo: \"react/routing\" referenced but \"react/rooting\" exists\n")
		assert.Contains(t, out, "🖼️  UNUSED ASSETS:\n  ⚠️  unused-icon.svg - Asset exists but appears to be unused\n")
		assert.Contains(t, out, "\n📈 SUMMARY:\n"+
			"  • Dead files: 1\n"+
			"  • Broken links: 1\n"+
			"  • Possible typos: 1\n"+
			"  • Unused assets: 1\n")
		assert.NotContains(t, out, CleanMessage)
		assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 50)+"\n"))

		// sections appear in a fixed order
		dead := strings.Index(out, "DEAD FILES")
		broken := strings.Index(out, "BROKEN LINKS")
		typos := strings.Index(out, "POSSIBLE TYPOS")
		unused := strings.Index(out, "UNUSED ASSETS")
		assert.True(t, dead < broken && broken < typos && typos < unused)
	})

	t.Run("clean", func(t *testing.T) {
		out := render(t, FormatText, cleanReport())
		assert.Contains(t, out, "✅ "+CleanMessage)
		assert.NotContains(t, out, "SUMMARY")
		assert.NotContains(t, out, "DEAD FILES")
	})

	t.Run("empty categories are omitted", func(t *testing.T) {
		r := cleanReport()
		r.Findings.UnusedAssets = createTestReport().Findings.UnusedAssets
		out := render(t, FormatText, r)
		assert.Contains(t, out, "UNUSED ASSETS")
		assert.NotContains(t, out, "BROKEN LINKS")
		assert.Contains(t, out, "  • Broken links: 0\n")
	})
}

func TestMarkdownWriter(t *testing.T) {
	out := render(t, FormatMarkdown, createTestReport())

	assert.Contains(t, out, "# Dead Code Detection Report")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## Dead Files")
	assert.Contains(t, out, "## Broken Links")
	assert.Contains(t, out, "## Possible Typos")
	assert.Contains(t, out, "## Unused Assets")
	assert.Contains(t, out, "`overview/orphan`")
	assert.Contains(t, out, "`react/rooting`")
	assert.Contains(t, out, "92%")
	assert.Contains(t, out, "[!WARNING]")

	clean := render(t, FormatMarkdown, cleanReport())
	assert.Contains(t, clean, "[!TIP]")
	assert.Contains(t, clean, CleanMessage)
	assert.NotContains(t, clean, "## Dead Files")
}

func TestJSONWriter(t *testing.T) {
	out := render(t, FormatJSON, createTestReport())

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	summary := doc["summary"].(map[string]interface{})
	assert.Equal(t, float64(4), summary["total"])
	assert.Equal(t, false, summary["clean"])

	findings := doc["findings"].(map[string]interface{})
	typos := findings["possible_typos"].([]interface{})
	require.Len(t, typos, 1)
	typo := typos[0].(map[string]interface{})
	assert.Equal(t, "possible-typo", typo["kind"])
	assert.Equal(t, "react/rooting", typo["existing"])
	assert.Equal(t, float64(92), typo["similarity"])

	t.Run("empty categories are arrays", func(t *testing.T) {
		out := render(t, FormatJSON, cleanReport())
		assert.Contains(t, out, `"dead_files": []`)
		assert.Contains(t, out, `"clean": true`)
	})

	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := NewJSONWriter(&buf).Write(createTestReport())
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})
}

func TestHTMLWriter(t *testing.T) {
	out := render(t, FormatHTML, createTestReport())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>docsweep report: gdg-docs</title>")
	assert.Contains(t, out, "Dead Files (1)")
	assert.Contains(t, out, "Possible Typos (1)")
	assert.Contains(t, out, "<code>unused-icon.svg</code>")
	assert.Contains(t, out, "did you mean react/rooting (92% similar)?")
	assert.Contains(t, out, "docsweep 1.2.3")
	assert.NotContains(t, out, "class=\"clean\"")

	clean := render(t, FormatHTML, cleanReport())
	assert.Contains(t, clean, CleanMessage)
	assert.NotContains(t, clean, "<table>")
}

func TestHTMLWriterEscapesPaths(t *testing.T) {
	r := cleanReport()
	r.Findings.DeadFiles = []sweep.Issue{{Kind: sweep.KindDeadFile, File: "<script>", Message: "x"}}
	out := render(t, FormatHTML, r)
	assert.NotContains(t, out, "<code><script></code>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Dead Files", title(sweep.KindDeadFile))
	assert.Equal(t, "Possible Typos", title(sweep.KindPossibleTypo))
}
