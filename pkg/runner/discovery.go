package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// walker holds the state shared by one discovery pass.
type walker struct {
	ctx        context.Context //nolint:containedctx // Scoped to a single Discover call.
	workDir    string
	extensions map[string]struct{}
	opts       Options
	seen       map[string]struct{}
	files      []string
}

// Discover finds scannable files matching opts under the working directory.
// It returns a deterministically sorted, de-duplicated list of absolute paths.
//
// Explicitly named files bypass the extension filter but not the exclude
// globs. Hidden files and directories are skipped during walks.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := w.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}

		if !w.excluded(absPath) {
			w.add(absPath)
		}
	}

	sort.Strings(w.files)

	return w.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}

	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

func (w *walker) excluded(path string) bool {
	relPath := w.rel(path)
	if matchAny(relPath, w.opts.ExcludeGlobs) {
		return true
	}
	return len(w.opts.IncludeGlobs) > 0 && !matchAny(relPath, w.opts.IncludeGlobs)
}

func (w *walker) wanted(path string) bool {
	if _, ok := w.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}
	return !w.excluded(path)
}

// walk recursively collects matching files under root.
func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || (path != root && matchAny(w.rel(path), w.opts.ExcludeGlobs)) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(path)
		}

		if w.wanted(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}

	return nil
}

// symlink handles a symlink found during a walk. Broken links are skipped.
// Directory targets are walked only with FollowSymlinks; the target path is
// walked rather than the link so WalkDir's Lstat does not stop at it.
func (w *walker) symlink(path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible targets are skipped.
	}

	if !info.IsDir() {
		if w.wanted(path) {
			w.add(path)
		}
		return nil
	}

	if !w.opts.FollowSymlinks {
		return nil
	}
	if _, ok := w.seen[target]; ok {
		return nil
	}
	w.seen[target] = struct{}{}

	return w.walk(target)
}
