package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markscan/pkg/fsutil"
	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/reporter"
	"github.com/yaklabco/markscan/pkg/runner"
	"github.com/yaklabco/markscan/pkg/source"
)

const workDir = "/work"

func sampleResult() *runner.Result {
	content := []byte(`<a href="/x" hidden>Hi</a>`)
	tokens := markup.Tokenize(content, markup.Options{})

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:    filepath.Join(workDir, "site", "index.html"),
				Kind:    source.KindHTML,
				Info:    &fsutil.FileInfo{Size: int64(len(content))},
				Content: content,
				Segments: []runner.ScannedSegment{
					{Segment: source.Segment{Start: 0, End: len(content)}, Tokens: tokens},
				},
			},
			{Path: filepath.Join(workDir, "bad.html"), Error: errors.New("file too large")},
		},
		Stats: runner.Stats{
			FilesDiscovered: 2,
			FilesScanned:    1,
			FilesErrored:    1,
			Bytes:           int64(len(content)),
			Segments:        1,
			Tokens:          len(tokens),
			TokensByKind: map[markup.TokenKind]int{
				markup.TokStartTag: 1,
				markup.TokText:     1,
				markup.TokEndTag:   1,
			},
		},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	return buf.String(), failed
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatText, false},
		{"text", reporter.FormatText, false},
		{"table", reporter.FormatTable, false},
		{"json", reporter.FormatJSON, false},
		{"summary", reporter.FormatSummary, false},
		{"JSON", "", true},
		{"diff", "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				assert.False(t, reporter.Format(testCase.input).IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}

	assert.False(t, reporter.Format("").IsValid())
	assert.Equal(t, "table", reporter.FormatTable.String())
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{
		Format:      reporter.FormatText,
		ShowSummary: true,
		WorkingDir:  workDir,
	}, sampleResult())

	assert.Equal(t, 1, failed)
	assert.Equal(t,
		filepath.Join("site", "index.html")+"  html  1 segment, 3 tokens\n"+
			"bad.html  error  file too large\n"+
			"\n"+
			"3 tokens in 1 segment across 1 file, 1 failed\n",
		out)
}

func TestTextReporter_ShowTokens(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatText, ShowTokens: true}, sampleResult())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "  [0,20)  StartTag     a  "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  [20,22)  Text"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], `"</a>"`), lines[3])
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{ShowSummary: true}, &runner.Result{})
	assert.Zero(t, failed)
	assert.Equal(t, "No files to scan.\n", out)

	out, _ = report(t, reporter.Options{}, nil)
	assert.Empty(t, out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{
		Format:     reporter.FormatJSON,
		ShowTokens: true,
		WorkingDir: workDir,
	}, sampleResult())
	assert.Equal(t, 1, failed)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Files, 2)
	file := decoded.Files[0]
	assert.Equal(t, filepath.Join("site", "index.html"), file.Path)
	assert.Equal(t, "html", file.Kind)
	assert.Equal(t, 3, file.Tokens)
	require.Len(t, file.Segments, 1)
	require.Len(t, file.Segments[0].Tokens, 3)

	start := file.Segments[0].Tokens[0]
	assert.Equal(t, "StartTag", start.Kind)
	assert.Equal(t, "a", start.Name)
	require.Len(t, start.Attrs, 2)
	require.NotNil(t, start.Attrs[0].Value)
	assert.Equal(t, "/x", *start.Attrs[0].Value)
	assert.Nil(t, start.Attrs[1].Value)

	assert.Equal(t, "file too large", decoded.Files[1].Error)
	assert.Equal(t, 1, decoded.Summary.TokensByKind["EndTag"])
	assert.Equal(t, 1, decoded.Summary.FilesErrored)
}

func TestJSONReporter_CompactWithoutTokens(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, sampleResult())

	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output is one line")
	assert.NotContains(t, out, `"kind":"StartTag"`)
	assert.Contains(t, out, `"segments":[{"start":0,"end":26}]`)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, nil)
	assert.Zero(t, failed)
	assert.Contains(t, out, `"files":[]`)
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{
		Format:      reporter.FormatTable,
		ShowSummary: true,
		WorkingDir:  workDir,
	}, sampleResult())

	assert.Equal(t, 1, failed)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, filepath.Join("site", "index.html"))
	assert.NotContains(t, out, workDir)
	assert.Contains(t, out, "file too large")
	assert.Contains(t, out, " 1 file scanned | 3 tokens | 1 failed")
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out, failed := report(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())
	assert.Equal(t, 1, failed)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "  Tokens:            3\n")
	assert.Contains(t, out, "Scan completed with failures")

	out, _ = report(t, reporter.Options{Format: reporter.FormatSummary}, nil)
	assert.Contains(t, out, "Scan completed\n")
}
