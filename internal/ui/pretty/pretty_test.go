package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markscan/internal/ui/pretty"
	"github.com/yaklabco/markscan/pkg/fsutil"
	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/runner"
	"github.com/yaklabco/markscan/pkg/source"
)

func sampleResult() *runner.Result {
	content := []byte("<p>Hi</p>")
	tokens := markup.Tokenize(content, markup.Options{})

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "index.html",
				Kind: source.KindHTML,
				Info: &fsutil.FileInfo{Path: "index.html", Size: int64(len(content))},
				Segments: []runner.ScannedSegment{
					{Segment: source.Segment{Start: 0, End: len(content)}, Tokens: tokens},
				},
			},
			{Path: "notes.md", Kind: source.KindMarkdown, Info: &fsutil.FileInfo{Size: 5}},
			{Path: "broken.html", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesScanned:    1,
			FilesSkipped:    1,
			FilesErrored:    1,
			Bytes:           14,
			Segments:        1,
			Tokens:          3,
			TokensByKind: map[markup.TokenKind]int{
				markup.TokStartTag: 1,
				markup.TokText:     1,
				markup.TokEndTag:   1,
			},
		},
	}
}

func TestFormatOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := sampleResult()

	assert.Equal(t, "index.html  html  1 segment, 3 tokens\n", styles.FormatOutcome(&result.Files[0]))
	assert.Equal(t, "notes.md  markdown  0 segments, 0 tokens\n", styles.FormatOutcome(&result.Files[1]))
	assert.Equal(t, "broken.html  error  permission denied\n", styles.FormatOutcome(&result.Files[2]))
}

func TestFormatToken(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	content := []byte(`<a href="x">` + strings.Repeat("y", 50))
	tokens := markup.Tokenize(content, markup.Options{})
	require.Len(t, tokens, 2)

	assert.Equal(t, "  [0,12)  StartTag     a  \"<a href=\\\"x\\\">\"\n", styles.FormatToken(&tokens[0], content))

	line := styles.FormatToken(&tokens[1], content)
	assert.True(t, strings.HasPrefix(line, "  [12,62)  Text       "), line)
	assert.True(t, strings.HasSuffix(line, "\"...\n"), line)
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t,
		"3 tokens in 1 segment across 1 file, 1 without markup, 1 failed\n",
		styles.FormatSummaryOneLine(sampleResult().Stats))
	assert.Equal(t, "No files to scan\n", styles.FormatSummaryOneLine(runner.Stats{}))
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatSummary(sampleResult().Stats)

	assert.Contains(t, out, "Files discovered:  3\n")
	assert.Contains(t, out, "Files failed:      1\n")
	assert.Contains(t, out, "  StartTag:        1\n")
	assert.NotContains(t, out, "Comment")
	assert.Contains(t, out, "Scan completed with failures")
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	out := formatter.FormatTable(sampleResult())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], " FILE "), lines[0])
	assert.Contains(t, lines[0], "SEGMENTS")
	assert.Equal(t, strings.Repeat("=", len(lines[1])), lines[1])
	assert.Contains(t, lines[2], "index.html")
	assert.Contains(t, lines[3], "no markup")
	assert.Contains(t, lines[4], "permission denied")

	assert.Empty(t, formatter.FormatTable(&runner.Result{}))
	assert.Equal(t, " 1 file scanned | 3 tokens | 1 failed | 2ms",
		formatter.FormatTableSummary(sampleResult().Stats, "2ms"))
}

func TestFormatTable_TruncatesToTerminal(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{
		{Path: strings.Repeat("d/", 60) + "page.html", Error: errors.New(strings.Repeat("x", 80))},
	}}

	out := pretty.NewTableFormatter(pretty.NewStyles(false), 80).FormatTable(result)
	row := strings.Split(out, "\n")[2]

	assert.Contains(t, row, "...")
	assert.Contains(t, row, "page.html")
}
