package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/markscan/internal/logging"
	"github.com/yaklabco/markscan/pkg/config"
	"github.com/yaklabco/markscan/pkg/fsutil"
	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/source"
)

// ErrTokenizerPanic wraps a panic raised while tokenizing a file.
var ErrTokenizerPanic = errors.New("tokenizer panic")

// Runner scans files concurrently. A Runner is safe for concurrent use.
type Runner struct {
	extractor   *source.Extractor
	tokenize    markup.Options
	markdown    bool
	maxFileSize int64
}

// New creates a Runner from a resolved configuration. A nil cfg uses defaults.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	return &Runner{
		extractor:   source.NewExtractor(string(cfg.Flavor)),
		tokenize:    markup.Options{RawTextElements: cfg.RawTextElements},
		markdown:    cfg.MarkdownEnabled(),
		maxFileSize: cfg.MaxFileSize,
	}
}

// Run discovers files under opts.Paths and scans them with a bounded worker
// pool. Outcomes are returned in path order regardless of completion order.
// Per-file failures are recorded in the outcome; only discovery failures and
// cancellation are returned as errors.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.KeepContent)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("scan complete",
		logging.FieldFilesScanned, result.Stats.FilesScanned,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldTokensTotal, result.Stats.Tokens,
	)

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, keepContent bool) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ScanFile(ctx, path)
		if !keepContent {
			outcome.Content = nil
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ScanFile reads, classifies, and tokenizes a single file. The returned
// outcome holds the file content.
func (r *Runner) ScanFile(ctx context.Context, path string) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)
	start := time.Now()

	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path, r.maxFileSize)
	if err != nil {
		outcome.Error = err
		logger.Debug("read failed", logging.FieldError, err)
		return outcome
	}
	outcome.Info = info
	outcome.Content = content

	segments, kind, err := r.ScanContent(path, content)
	outcome.Kind = kind
	outcome.Segments = segments
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		logger.Warn("scan failed", logging.FieldError, err)
		return outcome
	}

	logger.Debug("scanned file",
		logging.FieldKind, kind,
		logging.FieldSegments, len(segments),
		logging.FieldTokens, outcome.TokenCount(),
		logging.FieldDuration, time.Since(start),
	)

	return outcome
}

// ScanContent classifies content and tokenizes each of its markup segments.
// Each segment gets its own cursor; token offsets are rebased onto the file.
// A panic inside the tokenizer is returned as an error wrapping
// ErrTokenizerPanic.
func (r *Runner) ScanContent(path string, content []byte) (segments []ScannedSegment, kind source.Kind, err error) {
	kind = source.Detect(path, content)

	defer func() {
		if rec := recover(); rec != nil {
			segments = nil
			err = fmt.Errorf("%w: %v", ErrTokenizerPanic, rec)
		}
	}()

	for _, seg := range r.extractor.Segments(kind, content, r.markdown) {
		tokens := markup.Tokenize(content[seg.Start:seg.End], r.tokenize)
		for i := range tokens {
			tokens[i].StartOffset += seg.Start
			tokens[i].EndOffset += seg.Start
		}
		segments = append(segments, ScannedSegment{Segment: seg, Tokens: tokens})
	}

	return segments, kind, nil
}
