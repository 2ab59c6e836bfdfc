package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/markscan/internal/ui/pretty"
	"github.com/yaklabco/markscan/pkg/runner"
)

// TextReporter formats results as styled terminal output, one line per file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to scan."))
		}
		return 0, nil
	}

	for i := range result.Files {
		select {
		case <-ctx.Done():
			return failedFiles(result), fmt.Errorf("report cancelled: %w", ctx.Err())
		default:
		}

		file := result.Files[i]
		file.Path = displayPath(r.opts.WorkingDir, file.Path)
		fmt.Fprint(r.bw, r.styles.FormatOutcome(&file))

		if r.opts.ShowTokens {
			for _, seg := range file.Segments {
				for j := range seg.Tokens {
					fmt.Fprint(r.bw, r.styles.FormatToken(&seg.Tokens[j], file.Content))
				}
			}
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failedFiles(result), nil
}
