package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markscan/pkg/runner"
)

// makeTree writes each file with the given content under dir.
func makeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// relAll converts absolute paths to slash-separated paths relative to dir.
func relAll(t *testing.T, dir string, paths []string) []string {
	t.Helper()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"page.tmpl": "<p>"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"page.tmpl"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "page.tmpl")}, files, "named files bypass the extension filter")
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"index.html":       "",
		"docs/guide.md":    "",
		"docs/feed.XML":    "",
		"assets/logo.svg":  "",
		"src/main.go":      "",
		"notes.txt":        "",
		".hidden.html":     "",
		".cache/page.html": "",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/logo.svg",
		"docs/feed.XML",
		"docs/guide.md",
		"index.html",
	}, relAll(t, dir, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.html": "", "b.vue": "", "c.md": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".VUE", ".html"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "b.vue"}, relAll(t, dir, files))
}

func TestDiscover_ExcludeAndIncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{
		"index.html":                "",
		"app.min.html":              "",
		"vendor/lib/x.html":         "",
		"site/node_modules/y.html":  "",
		"site/pages/about.html":     "",
		"site/pages/deep/team.html": "",
	})

	tests := []struct {
		name    string
		exclude []string
		include []string
		want    []string
	}{
		{
			name:    "directory and base name patterns",
			exclude: []string{"vendor/**", "**/node_modules", "*.min.html"},
			want:    []string{"index.html", "site/pages/about.html", "site/pages/deep/team.html"},
		},
		{
			name:    "double star in the middle",
			exclude: []string{"site/**/team.html"},
			want: []string{
				"app.min.html", "index.html", "site/node_modules/y.html",
				"site/pages/about.html", "vendor/lib/x.html",
			},
		},
		{
			name:    "include restricts",
			include: []string{"site/pages/**"},
			want:    []string{"site/pages/about.html", "site/pages/deep/team.html"},
		},
		{
			name:    "malformed pattern matches nothing",
			exclude: []string{"["},
			want: []string{
				"app.min.html", "index.html", "site/node_modules/y.html",
				"site/pages/about.html", "site/pages/deep/team.html", "vendor/lib/x.html",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir:   dir,
				ExcludeGlobs: testCase.exclude,
				IncludeGlobs: testCase.include,
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.want, relAll(t, dir, files))
		})
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"docs/a.html": "", "b.html": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", "docs", "docs/a.html", "./b.html"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.html", "docs/a.html"}, relAll(t, dir, files))
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat missing")
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	makeTree(t, dir, map[string]string{"a.html": ""})
	makeTree(t, outside, map[string]string{"linked.html": ""})

	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Len(t, files, 1)

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, files, 2)

	realOutside, err := filepath.EvalSymlinks(outside)
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(realOutside, "linked.html"))
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	exts := runner.DefaultExtensions()
	assert.Contains(t, exts, ".html")
	assert.Contains(t, exts, ".md")
}
