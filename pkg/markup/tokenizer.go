// Package markup tokenizes HTML-like markup into a flat stream of spans.
//
// The tokenizer is a set of small recursive-descent rules (content,
// elements, comments, bang declarations, processing instructions, and
// raw-text element bodies) driven entirely through a scan.Cursor. It builds
// no tree and decodes no entities. Constructs that do not complete, such as a
// '<' that starts no tag, are left as text.
package markup

import (
	"github.com/yaklabco/markscan/pkg/lookup"
	"github.com/yaklabco/markscan/pkg/scan"
)

// Grammar tables derived from the shared registry.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	notLt          = lookup.Not(lookup.Lt)
	notGt          = lookup.Not(lookup.Gt)
	notDash        = lookup.Not(lookup.Dash)
	notQuestion    = lookup.Not(lookup.Question)
	notRightSquare = lookup.Not(lookup.Of(']'))
	rawEndTerm     = lookup.Union(lookup.Whitespace, lookup.SlashOrGt)
)

// DefaultRawTextElements returns the elements whose bodies are not markup.
func DefaultRawTextElements() []string {
	return []string{"script", "style", "textarea"}
}

// Options controls tokenization.
type Options struct {
	// RawTextElements lists (lower-case) elements whose content runs
	// verbatim up to the matching end tag.
	// Defaults to DefaultRawTextElements() when nil.
	RawTextElements []string
}

// tokenizer emits tokens for one buffer.
type tokenizer struct {
	content   []byte
	cur       *scan.Cursor
	tokens    []Token
	rawText   map[string]struct{}
	textStart int
}

// Tokenize performs a single-pass tokenization of content.
// Returns tokens that are contiguous, non-overlapping, and cover [0, len(content)).
func Tokenize(content []byte, opts Options) []Token {
	if len(content) == 0 {
		return nil
	}

	rawNames := opts.RawTextElements
	if rawNames == nil {
		rawNames = DefaultRawTextElements()
	}

	const initialCapacityDivisor = 8
	tok := &tokenizer{
		content: content,
		cur:     scan.New(content),
		tokens:  make([]Token, 0, len(content)/initialCapacityDivisor+1),
		rawText: make(map[string]struct{}, len(rawNames)),
	}
	for _, name := range rawNames {
		tok.rawText[string(lowerASCII([]byte(name)))] = struct{}{}
	}

	tok.tokenize()

	return tok.tokens
}

// tokenize is the content rule: text runs interleaved with markup.
func (t *tokenizer) tokenize() {
	for !t.cur.AtEnd() {
		if _, ok := t.cur.SkipWhileIn(notLt); ok {
			continue
		}
		if !t.markup() {
			// A '<' that opens nothing is text.
			t.cur.Shift(1)
		}
	}
	t.flushText(t.cur.Pos())
}

// markup tries every construct that starts with '<'. The cursor is left
// unchanged when none matches.
func (t *tokenizer) markup() bool {
	start := t.cur.Checkpoint()
	startPos := t.cur.Pos()

	if !t.cur.ShiftIf('<') {
		return false
	}

	var matched bool
	switch {
	case t.cur.ShiftIfSeq([]byte("!--")):
		matched = t.comment(startPos)
	case t.cur.ShiftIfSeq([]byte("![CDATA[")):
		matched = t.cdata(startPos)
	case t.cur.ShiftIf('!'):
		matched = t.bang(startPos)
	case t.cur.ShiftIf('?'):
		matched = t.instruction(startPos)
	case t.cur.ShiftIf('/'):
		matched = t.endTag(startPos)
	default:
		matched = t.startTag(startPos)
	}

	if !matched {
		t.cur.Restore(start)
	}
	return matched
}

// flushText emits pending text up to end.
func (t *tokenizer) flushText(end int) {
	if t.textStart < end {
		t.tokens = append(t.tokens, Token{Kind: TokText, StartOffset: t.textStart, EndOffset: end})
	}
	t.textStart = end
}

// emit flushes pending text before start and appends tok ending at the
// current cursor position.
func (t *tokenizer) emit(tok Token) {
	t.flushText(tok.StartOffset)
	tok.EndOffset = t.cur.Pos()
	t.tokens = append(t.tokens, tok)
	t.textStart = tok.EndOffset
}

// lowerASCII lower-cases ASCII letters of an owned slice in place.
func lowerASCII(b []byte) []byte {
	for i, c := range b {
		if lookup.UpperAlpha.Has(c) {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}

// equalFoldASCII compares b and s ignoring ASCII case.
func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		x, y := b[i], s[i]
		if lookup.UpperAlpha.Has(x) {
			x += 'a' - 'A'
		}
		if lookup.UpperAlpha.Has(y) {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}
