package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/source"
)

func TestDetect_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want source.Kind
	}{
		{"index.html", source.KindHTML},
		{"INDEX.HTM", source.KindHTML},
		{"feed.rss", source.KindXML},
		{"pom.xml", source.KindXML},
		{"icon.svg", source.KindSVG},
		{"README.md", source.KindMarkdown},
		{"notes.markdown", source.KindMarkdown},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, source.Detect(testCase.path, nil))
		})
	}
}

func TestDetect_Prefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, source.KindXML, source.Detect("data.unknownext", []byte("<?xml version=\"1.0\"?><a/>")))
	assert.Equal(t, source.KindHTML, source.Detect("page.unknownext", []byte("\n  <!DOCTYPE HTML><p>")))
	assert.Equal(t, source.KindUnknown, source.Detect("data.unknownext", []byte("plain words")))
	assert.Equal(t, source.KindUnknown, source.Detect("empty.unknownext", nil))
}

func TestKind_IsMarkup(t *testing.T) {
	t.Parallel()

	assert.True(t, source.KindHTML.IsMarkup())
	assert.True(t, source.KindXML.IsMarkup())
	assert.True(t, source.KindSVG.IsMarkup())
	assert.False(t, source.KindMarkdown.IsMarkup())
	assert.False(t, source.KindUnknown.IsMarkup())
}

func TestSegments_MarkupIsWholeFile(t *testing.T) {
	t.Parallel()

	ext := source.NewExtractor(source.FlavorCommonMark)
	content := []byte("<p>x</p>")

	segs := ext.Segments(source.KindHTML, content, true)
	require.Len(t, segs, 1)
	assert.Equal(t, source.Segment{Start: 0, End: len(content)}, segs[0])
	assert.Equal(t, len(content), segs[0].Len())

	assert.Empty(t, ext.Segments(source.KindHTML, nil, true))
	assert.Empty(t, ext.Segments(source.KindUnknown, content, true))
}

func TestSegments_Markdown(t *testing.T) {
	t.Parallel()

	content := []byte("# Title\n\n<div class=\"x\">\nhello\n</div>\n\nText with <b>bold</b> here.\n")

	for _, flavor := range []string{source.FlavorCommonMark, source.FlavorGFM, "bogus"} {
		t.Run(flavor, func(t *testing.T) {
			t.Parallel()

			segs := source.NewExtractor(flavor).Segments(source.KindMarkdown, content, true)
			require.Len(t, segs, 3)

			block := string(content[segs[0].Start:segs[0].End])
			assert.True(t, strings.HasPrefix(block, "<div class=\"x\">"), block)
			assert.Contains(t, block, "</div>")

			assert.Equal(t, "<b>", string(content[segs[1].Start:segs[1].End]))
			assert.Equal(t, "</b>", string(content[segs[2].Start:segs[2].End]))
		})
	}
}

func TestSegments_MarkdownDisabled(t *testing.T) {
	t.Parallel()

	segs := source.NewExtractor("").Segments(source.KindMarkdown, []byte("<div>x</div>\n"), false)
	assert.Empty(t, segs)
}

func TestSegments_MarkdownWithoutHTML(t *testing.T) {
	t.Parallel()

	segs := source.NewExtractor("").Segments(source.KindMarkdown, []byte("just *text*\n\n- item\n"), true)
	assert.Empty(t, segs)
}

func TestSegments_MarkdownMultiLineInlineTag(t *testing.T) {
	t.Parallel()

	content := []byte("Hello <a\n  href=\"x\">link</a> world\n")

	segs := source.NewExtractor(source.FlavorGFM).Segments(source.KindMarkdown, content, true)
	require.Len(t, segs, 2)

	open := content[segs[0].Start:segs[0].End]
	assert.Equal(t, "<a\n  href=\"x\">", string(open))
	assert.Equal(t, "</a>", string(content[segs[1].Start:segs[1].End]))

	tokens := markup.Tokenize(open, markup.Options{})
	require.Len(t, tokens, 1)
	assert.Equal(t, markup.TokStartTag, tokens[0].Kind)
	assert.Equal(t, "a", string(tokens[0].Name))

	href, ok := tokens[0].Attr("href")
	require.True(t, ok)
	assert.Equal(t, "x", string(href.Value))
}
