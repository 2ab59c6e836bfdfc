// Package reporter writes scan results in text, table, JSON, and summary form.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/markscan/pkg/runner"
)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files that failed and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// failedFiles counts outcomes with an error.
func failedFiles(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesErrored
}

// displayPath returns path relative to workDir when that is shorter.
func displayPath(workDir, path string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
