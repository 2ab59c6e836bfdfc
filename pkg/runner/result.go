package runner

import (
	"github.com/yaklabco/markscan/pkg/fsutil"
	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/source"
)

// ScannedSegment is one markup range of a file and its tokens.
// Token offsets are relative to the start of the file.
type ScannedSegment struct {
	source.Segment

	Tokens []markup.Token
}

// FileOutcome is the scan result for a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Kind is the detected source kind.
	Kind source.Kind

	// Info holds size, modification time, and content hash.
	// Nil if the file could not be read.
	Info *fsutil.FileInfo

	// Segments are the scanned markup ranges in file order.
	Segments []ScannedSegment

	// Content is the file content, kept only when Options.KeepContent is set.
	Content []byte

	// Error is set if the file could not be processed.
	Error error
}

// TokenCount returns the number of tokens across all segments.
func (o *FileOutcome) TokenCount() int {
	n := 0
	for _, seg := range o.Segments {
		n += len(seg.Tokens)
	}
	return n
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesScanned is the number of files that yielded at least one segment.
	FilesScanned int

	// FilesSkipped is the number of readable files with nothing to scan.
	FilesSkipped int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// Bytes is the total size of all files read.
	Bytes int64

	// Segments is the total number of scanned segments.
	Segments int

	// Tokens is the total number of tokens.
	Tokens int

	// TokensByKind maps token kinds to counts.
	TokensByKind map[markup.TokenKind]int

	// FilesByKind maps source kinds to file counts.
	FilesByKind map[source.Kind]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		TokensByKind: make(map[markup.TokenKind]int),
		FilesByKind:  make(map[source.Kind]int),
	}
}

// accumulate appends an outcome and folds it into the statistics.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Info != nil {
		r.Stats.Bytes += outcome.Info.Size
	}
	r.Stats.FilesByKind[outcome.Kind]++

	if len(outcome.Segments) == 0 {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesScanned++
	r.Stats.Segments += len(outcome.Segments)

	for _, seg := range outcome.Segments {
		r.Stats.Tokens += len(seg.Tokens)
		for _, tok := range seg.Tokens {
			r.Stats.TokensByKind[tok.Kind]++
		}
	}
}
