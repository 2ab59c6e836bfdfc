// Package runner discovers markup files and scans them concurrently.
package runner

import (
	"strings"

	"github.com/yaklabco/markscan/pkg/config"
)

// Options controls multi-file scanning behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// during discovery. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restrict discovery to matching paths, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// KeepContent retains each file's content in its outcome.
	KeepContent bool
}

// DefaultExtensions returns the default set of scanned file extensions.
func DefaultExtensions() []string {
	return config.NewConfig().Extensions
}

// OptionsFromConfig builds discovery options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}
}

func (o Options) effectiveExtensions() map[string]struct{} {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}

	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
