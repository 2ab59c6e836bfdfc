package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindsAndText flattens tokens for compact assertions.
func kindsAndText(content []byte, tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind.String()+":"+string(tok.Text(content)))
	}
	return out
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(nil, Options{}))
	assert.Empty(t, Tokenize([]byte{}, Options{}))
}

func TestTokenize_ValidatesContiguous(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "Hello, world!"},
		{"element", "<p>Hello</p>"},
		{"attributes", `<a href="/x" title='t' data-n=1 hidden>link</a>`},
		{"self closing", "<br/><img src=x />"},
		{"comment", "a<!-- note -->b"},
		{"unterminated comment", "a<!-- note"},
		{"doctype", "<!DOCTYPE html><html></html>"},
		{"cdata", "<![CDATA[x < y]]>"},
		{"instruction", `<?xml version="1.0"?><root/>`},
		{"script", "<script>if (a < b) {}</script>"},
		{"unterminated script", "<script>let x = 1"},
		{"stray lt", "1 < 2 and <3"},
		{"unterminated tag", "<div class=\"x"},
		{"end tag without name", "</>"},
		{"lone lt", "<"},
		{"mixed", "<!doctype html>\n<html lang=en>\n<head><style>p{}</style></head>\n<body><!--c--><p>x</p></body>\n</html>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			tokens := Tokenize(content, Options{})

			if !ValidateTokens(tokens, len(content)) {
				t.Errorf("tokens are not contiguous or do not cover content")
				for i, tok := range tokens {
					t.Logf("  token[%d]: kind=%v start=%d end=%d text=%q",
						i, tok.Kind, tok.StartOffset, tok.EndOffset, tok.Text(content))
				}
			}
		})
	}
}

func TestTokenize_Element(t *testing.T) {
	content := []byte("<P>Hi</P >")
	tokens := Tokenize(content, Options{})

	assert.Equal(t, []string{"StartTag:<P>", "Text:Hi", "EndTag:</P >"}, kindsAndText(content, tokens))
	assert.Equal(t, "p", string(tokens[0].Name), "tag names are lower-cased")
	assert.Equal(t, "p", string(tokens[2].Name))
}

func TestTokenize_Attributes(t *testing.T) {
	content := []byte(`<input Type="text" value='a "b"' size=10 disabled data-x = y>`)
	tokens := Tokenize(content, Options{})
	require.Len(t, tokens, 1)

	tok := tokens[0]
	require.Equal(t, TokStartTag, tok.Kind)
	assert.Equal(t, "input", string(tok.Name))
	require.Len(t, tok.Attrs, 5)

	typ, ok := tok.Attr("type")
	require.True(t, ok)
	assert.Equal(t, "text", string(typ.Value))
	assert.Equal(t, byte('"'), typ.Quote)

	value, ok := tok.Attr("value")
	require.True(t, ok)
	assert.Equal(t, `a "b"`, string(value.Value))
	assert.Equal(t, byte('\''), value.Quote)

	size, ok := tok.Attr("size")
	require.True(t, ok)
	assert.Equal(t, "10", string(size.Value))
	assert.Zero(t, size.Quote)

	disabled, ok := tok.Attr("disabled")
	require.True(t, ok)
	assert.False(t, disabled.HasValue)

	spaced, ok := tok.Attr("data-x")
	require.True(t, ok)
	assert.Equal(t, "y", string(spaced.Value))

	_, ok = tok.Attr("missing")
	assert.False(t, ok)
}

func TestTokenize_AttributeCopiesAreOwned(t *testing.T) {
	content := []byte(`<a href="x">`)
	tokens := Tokenize(content, Options{})
	require.Len(t, tokens, 1)

	href, ok := tokens[0].Attr("href")
	require.True(t, ok)
	href.Value[0] = 'Z'
	assert.Equal(t, `<a href="x">`, string(content))
}

func TestTokenize_SelfClosing(t *testing.T) {
	content := []byte("<br/><hr />")
	tokens := Tokenize(content, Options{})
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].SelfClosing)
	assert.True(t, tokens[1].SelfClosing)
	assert.Empty(t, tokens[1].Attrs)
}

func TestTokenize_Comment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"simple", "<!--hi-->", []string{"Comment:<!--hi-->"}},
		{"dashes inside", "<!-- a - b -- c --->x", []string{"Comment:<!-- a - b -- c --->", "Text:x"}},
		{"unterminated", "x<!-- open", []string{"Text:x", "Comment:<!-- open"}},
		{"markup inside", "<!-- <p> -->", []string{"Comment:<!-- <p> -->"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			assert.Equal(t, tt.want, kindsAndText(content, Tokenize(content, Options{})))
		})
	}
}

func TestTokenize_Bang(t *testing.T) {
	content := []byte("<!DOCTYPE html>\n")
	tokens := Tokenize(content, Options{})

	assert.Equal(t, []string{"Bang:<!DOCTYPE html>", "Text:\n"}, kindsAndText(content, tokens))
	assert.Equal(t, "doctype", string(tokens[0].Name))
}

func TestTokenize_CDATA(t *testing.T) {
	content := []byte("<![CDATA[a]b]]c]]>d")
	assert.Equal(t,
		[]string{"CDATA:<![CDATA[a]b]]c]]>", "Text:d"},
		kindsAndText(content, Tokenize(content, Options{})))
}

func TestTokenize_Instruction(t *testing.T) {
	content := []byte(`<?xml version="1.0" a="?"?><r/>`)
	tokens := Tokenize(content, Options{})

	assert.Equal(t, []string{`Instruction:<?xml version="1.0" a="?"?>`, "StartTag:<r/>"}, kindsAndText(content, tokens))
	assert.Equal(t, "xml", string(tokens[0].Name))
}

func TestTokenize_RawText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "script with markup",
			content: "<script>a<b && '</p>'</script>",
			want:    []string{"StartTag:<script>", "RawText:a<b && '</p>'", "EndTag:</script>"},
		},
		{
			name:    "case insensitive end",
			content: "<style>p{}</STYLE>",
			want:    []string{"StartTag:<style>", "RawText:p{}", "EndTag:</STYLE>"},
		},
		{
			name:    "prefix is not an end",
			content: "<script></scripts></script>",
			want:    []string{"StartTag:<script>", "RawText:</scripts>", "EndTag:</script>"},
		},
		{
			name:    "empty body",
			content: "<textarea></textarea>",
			want:    []string{"StartTag:<textarea>", "EndTag:</textarea>"},
		},
		{
			name:    "unterminated body",
			content: "<script>x</scr",
			want:    []string{"StartTag:<script>", "RawText:x</scr"},
		},
		{
			name:    "self closing has no body",
			content: "<script/><p>",
			want:    []string{"StartTag:<script/>", "StartTag:<p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			assert.Equal(t, tt.want, kindsAndText(content, Tokenize(content, Options{})))
		})
	}
}

func TestTokenize_CustomRawTextElements(t *testing.T) {
	content := []byte("<pre><b></pre><script><b></script>")
	tokens := Tokenize(content, Options{RawTextElements: []string{"PRE"}})

	assert.Equal(t, []string{
		"StartTag:<pre>", "RawText:<b>", "EndTag:</pre>",
		"StartTag:<script>", "StartTag:<b>", "EndTag:</script>",
	}, kindsAndText(content, tokens))
}

func TestTokenize_Backtracking(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"not a tag", "1 < 2", []string{"Text:1 < 2"}},
		{"digit after lt", "<3 x", []string{"Text:<3 x"}},
		{"unterminated quoted attr", `<a href="x>y`, []string{`Text:<a href="x>y`}},
		{"unterminated end tag", "</a", []string{"Text:</a"}},
		{"unterminated start tag", "<a b", []string{"Text:<a b"}},
		{"stray quote in tag", `<a "<b>`, []string{"StartTag:<a \"<b>"}},
		{"failed tag then tag", "<1<b>", []string{"Text:<1", "StartTag:<b>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			assert.Equal(t, tt.want, kindsAndText(content, Tokenize(content, Options{})))
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "Text", TokText.String())
	assert.Equal(t, "RawText", TokRawText.String())
	assert.Equal(t, "TokenKind(99)", TokenKind(99).String())
	assert.Len(t, Kinds(), 8)
}

func TestValidateTokens(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		contentLen int
		expected   bool
	}{
		{"empty tokens empty content", nil, 0, true},
		{"empty tokens non-empty content", nil, 5, false},
		{"valid", []Token{{StartOffset: 0, EndOffset: 3}, {StartOffset: 3, EndOffset: 5}}, 5, true},
		{"gap", []Token{{StartOffset: 0, EndOffset: 2}, {StartOffset: 3, EndOffset: 5}}, 5, false},
		{"overlap", []Token{{StartOffset: 0, EndOffset: 3}, {StartOffset: 2, EndOffset: 5}}, 5, false},
		{"short", []Token{{StartOffset: 0, EndOffset: 3}}, 5, false},
		{"late start", []Token{{StartOffset: 1, EndOffset: 5}}, 5, false},
		{"empty token", []Token{{StartOffset: 0, EndOffset: 0}, {StartOffset: 0, EndOffset: 5}}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateTokens(tt.tokens, tt.contentLen))
		})
	}
}

func TestToken_TextInvalidRange(t *testing.T) {
	content := []byte("hello")
	assert.Nil(t, Token{StartOffset: -1, EndOffset: 3}.Text(content))
	assert.Nil(t, Token{StartOffset: 0, EndOffset: 100}.Text(content))
	assert.Nil(t, Token{StartOffset: 4, EndOffset: 3}.Text(content))
	assert.Equal(t, 2, Token{StartOffset: 1, EndOffset: 3}.Len())
}
