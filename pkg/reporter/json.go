package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/runner"
)

// jsonSchemaVersion identifies the JSON output layout.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Kind     string        `json:"kind,omitempty"`
	Size     int64         `json:"size"`
	SHA256   string        `json:"sha256,omitempty"`
	Tokens   int           `json:"tokens"`
	Segments []JSONSegment `json:"segments"`
	Error    string        `json:"error,omitempty"`
}

// JSONSegment is a scanned byte range.
type JSONSegment struct {
	Start  int         `json:"start"`
	End    int         `json:"end"`
	Tokens []JSONToken `json:"tokens,omitempty"`
}

// JSONToken is a single token. Offsets are file-relative.
type JSONToken struct {
	Kind        string     `json:"kind"`
	Start       int        `json:"start"`
	End         int        `json:"end"`
	Name        string     `json:"name,omitempty"`
	SelfClosing bool       `json:"selfClosing,omitempty"`
	Attrs       []JSONAttr `json:"attrs,omitempty"`
}

// JSONAttr is a start-tag attribute.
type JSONAttr struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesScanned    int            `json:"filesScanned"`
	FilesSkipped    int            `json:"filesSkipped"`
	FilesErrored    int            `json:"filesErrored"`
	Bytes           int64          `json:"bytes"`
	Segments        int            `json:"segments"`
	Tokens          int            `json:"tokens"`
	TokensByKind    map[string]int `json:"tokensByKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failedFiles(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) JSONOutput {
	output := JSONOutput{
		Version: jsonSchemaVersion,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{TokensByKind: map[string]int{}},
	}

	if result == nil {
		return output
	}

	for i := range result.Files {
		output.Files = append(output.Files, r.buildFile(&result.Files[i]))
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesScanned:    stats.FilesScanned,
		FilesSkipped:    stats.FilesSkipped,
		FilesErrored:    stats.FilesErrored,
		Bytes:           stats.Bytes,
		Segments:        stats.Segments,
		Tokens:          stats.Tokens,
		TokensByKind:    make(map[string]int, len(stats.TokensByKind)),
	}
	for kind, n := range stats.TokensByKind {
		output.Summary.TokensByKind[kind.String()] = n
	}

	return output
}

func (r *JSONReporter) buildFile(file *runner.FileOutcome) JSONFileResult {
	out := JSONFileResult{
		Path:     displayPath(r.opts.WorkingDir, file.Path),
		Kind:     string(file.Kind),
		Tokens:   file.TokenCount(),
		Segments: make([]JSONSegment, 0, len(file.Segments)),
	}

	if file.Info != nil {
		out.Size = file.Info.Size
		out.SHA256 = file.Info.HashHex()
	}
	if file.Error != nil {
		out.Error = file.Error.Error()
	}

	for _, seg := range file.Segments {
		jseg := JSONSegment{Start: seg.Start, End: seg.End}
		if r.opts.ShowTokens {
			jseg.Tokens = make([]JSONToken, 0, len(seg.Tokens))
			for i := range seg.Tokens {
				jseg.Tokens = append(jseg.Tokens, jsonToken(&seg.Tokens[i]))
			}
		}
		out.Segments = append(out.Segments, jseg)
	}

	return out
}

func jsonToken(tok *markup.Token) JSONToken {
	out := JSONToken{
		Kind:        tok.Kind.String(),
		Start:       tok.StartOffset,
		End:         tok.EndOffset,
		Name:        string(tok.Name),
		SelfClosing: tok.SelfClosing,
	}

	for _, attr := range tok.Attrs {
		jattr := JSONAttr{Name: string(attr.Name)}
		if attr.HasValue {
			value := string(attr.Value)
			jattr.Value = &value
		}
		out.Attrs = append(out.Attrs, jattr)
	}

	return out
}
