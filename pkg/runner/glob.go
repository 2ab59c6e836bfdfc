package runner

import (
	"path"
	"path/filepath"
	"strings"
)

// matchAny reports whether relPath matches any of the patterns.
func matchAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob pattern.
//
// A "**" segment matches zero or more path segments. Patterns without a
// slash also match against the base name, so "*.min.html" excludes such
// files at any depth. Malformed patterns never match.
func matchGlob(relPath, pattern string) bool {
	relPath = filepath.ToSlash(relPath)
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

	if !strings.Contains(pattern, "/") && pattern != "**" {
		matched, err := path.Match(pattern, path.Base(relPath))
		if err == nil && matched {
			return true
		}
	}

	return matchSegments(strings.Split(relPath, "/"), strings.Split(pattern, "/"))
}

func matchSegments(segs, pats []string) bool {
	for len(pats) > 0 {
		if pats[0] == "**" {
			rest := pats[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(segs) + 1 {
				if matchSegments(segs[i:], rest) {
					return true
				}
			}
			return false
		}

		if len(segs) == 0 {
			return false
		}

		matched, err := path.Match(pats[0], segs[0])
		if err != nil || !matched {
			return false
		}

		segs, pats = segs[1:], pats[1:]
	}

	return len(segs) == 0
}
