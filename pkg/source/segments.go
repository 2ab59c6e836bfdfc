package source

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Markdown flavors understood by the extractor.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Segment is a byte range [Start, End) of a file that holds markup.
type Segment struct {
	Start int
	End   int
}

// Len returns the length of the segment in bytes.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Extractor finds markup segments in files.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates an extractor whose Markdown parser follows flavor.
// Unknown flavors fall back to CommonMark.
func NewExtractor(flavor string) *Extractor {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return &Extractor{md: goldmark.New(opts...)}
}

// Segments returns the markup ranges of content, in ascending order.
// Markup kinds yield one segment covering the whole file. Markdown yields
// its raw HTML, unless markdown is false. Other kinds yield nothing.
func (e *Extractor) Segments(kind Kind, content []byte, markdown bool) []Segment {
	switch {
	case len(content) == 0:
		return nil
	case kind.IsMarkup():
		return []Segment{{Start: 0, End: len(content)}}
	case kind == KindMarkdown && markdown:
		return e.markdownSegments(content)
	default:
		return nil
	}
}

// markdownSegments collects HTML blocks and inline raw HTML from the
// goldmark AST. Adjacent lines of one block are merged; an inline tag is
// always one segment.
func (e *Extractor) markdownSegments(content []byte) []Segment {
	doc := e.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	var segs []Segment
	add := func(seg text.Segment) {
		if seg.Stop <= seg.Start {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].End == seg.Start {
			segs[n-1].End = seg.Stop
			return
		}
		segs = append(segs, Segment{Start: seg.Start, End: seg.Stop})
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.HTMLBlock:
			lines := n.Lines()
			for i := range lines.Len() {
				add(lines.At(i))
			}
			if n.HasClosure() {
				add(n.ClosureLine)
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			// One inline tag may span lines; goldmark splits it per line and
			// drops continuation indentation, so cover the whole range.
			if count := n.Segments.Len(); count > 0 {
				add(text.NewSegment(n.Segments.At(0).Start, n.Segments.At(count-1).Stop))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })

	return segs
}
