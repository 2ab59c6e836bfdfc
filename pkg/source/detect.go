// Package source decides which bytes of a file are markup and where they are.
//
// Markup files (HTML, XML, SVG) are scanned whole. Markdown files are parsed
// with goldmark and only their raw HTML blocks and inline HTML spans are
// returned for scanning.
package source

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind classifies a source file.
type Kind string

// Supported kinds.
const (
	KindHTML     Kind = "html"
	KindXML      Kind = "xml"
	KindSVG      Kind = "svg"
	KindMarkdown Kind = "markdown"
	KindUnknown  Kind = "unknown"
)

// IsMarkup reports whether the whole file is markup.
func (k Kind) IsMarkup() bool {
	switch k {
	case KindHTML, KindXML, KindSVG:
		return true
	default:
		return false
	}
}

// extensionKinds is the fast path for well-known extensions.
//
//nolint:gochecknoglobals // Read-only lookup table.
var extensionKinds = map[string]Kind{
	".html":     KindHTML,
	".htm":      KindHTML,
	".xhtml":    KindHTML,
	".xml":      KindXML,
	".xsl":      KindXML,
	".xslt":     KindXML,
	".rss":      KindXML,
	".atom":     KindXML,
	".svg":      KindSVG,
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
}

// enryKinds maps go-enry language names to kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var enryKinds = map[string]Kind{
	"HTML":     KindHTML,
	"XML":      KindXML,
	"SVG":      KindSVG,
	"Markdown": KindMarkdown,
}

// Detect returns the kind of the file at path with the given content.
//
// Detection order:
//  1. Well-known file extension.
//  2. go-enry language detection from file name and content.
//  3. Leading "<?xml" or "<!doctype html" in the content.
func Detect(path string, content []byte) Kind {
	if kind, ok := extensionKinds[strings.ToLower(filepath.Ext(path))]; ok {
		return kind
	}

	if kind, ok := enryKinds[enry.GetLanguage(filepath.Base(path), content)]; ok {
		return kind
	}

	return detectByPrefix(content)
}

// detectByPrefix checks for a markup prolog at the start of the content.
func detectByPrefix(content []byte) Kind {
	trimmed := bytes.TrimLeft(content, " \t\r\n\ufeff")
	lower := bytes.ToLower(trimmed[:min(len(trimmed), len("<!doctype html"))])

	switch {
	case bytes.HasPrefix(lower, []byte("<?xml")):
		return KindXML
	case bytes.HasPrefix(lower, []byte("<!doctype html")), bytes.HasPrefix(lower, []byte("<html")):
		return KindHTML
	default:
		return KindUnknown
	}
}
