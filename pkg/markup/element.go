package markup

import "github.com/yaklabco/markscan/pkg/lookup"

// startTag parses a start tag after '<'. It fails without emitting when the
// name does not start with a letter or the tag is not closed.
func (t *tokenizer) startTag(startPos int) bool {
	name, ok := t.tagName()
	if !ok {
		return false
	}

	tok := Token{Kind: TokStartTag, StartOffset: startPos, Name: name}

	for {
		t.cur.SkipWhileIn(lookup.Whitespace)

		if t.cur.ShiftIf('>') {
			break
		}
		if t.cur.ShiftIfSeq([]byte("/>")) {
			tok.SelfClosing = true
			break
		}
		if t.cur.AtEnd() {
			return false
		}
		if t.cur.ShiftIf('/') {
			continue
		}

		attr, ok := t.attribute()
		if !ok {
			return false
		}
		tok.Attrs = append(tok.Attrs, attr)
	}

	t.emit(tok)

	if _, raw := t.rawText[string(name)]; raw && !tok.SelfClosing {
		t.rawTextBody(name)
	}
	return true
}

// endTag parses an end tag after "</".
func (t *tokenizer) endTag(startPos int) bool {
	name, ok := t.tagName()
	if !ok {
		return false
	}

	t.cur.SkipWhileIn(notGt)
	if !t.cur.ShiftIf('>') {
		return false
	}

	t.emit(Token{Kind: TokEndTag, StartOffset: startPos, Name: name})
	return true
}

// tagName consumes a tag name starting with an ASCII letter and returns it
// lower-cased.
func (t *tokenizer) tagName() ([]byte, bool) {
	if b, ok := t.cur.Peek(0); !ok || !lookup.Alpha.Has(b) {
		return nil, false
	}
	return lowerASCII(t.cur.CopyWhileIn(lookup.TagNameChar)), true
}

// attribute parses one attribute. It fails on an unterminated quoted value.
func (t *tokenizer) attribute() (Attr, bool) {
	name := t.cur.CopyWhileIn(lookup.AttrNameChar)
	if len(name) == 0 {
		// Stray byte such as '"' or '='; take it as the name so the tag
		// still makes progress.
		name = t.cur.CopyAndShift(1)
	}
	attr := Attr{Name: lowerASCII(name)}

	afterName := t.cur.Checkpoint()
	t.cur.SkipWhileIn(lookup.Whitespace)
	if !t.cur.ShiftIf('=') {
		t.cur.Restore(afterName)
		return attr, true
	}
	t.cur.SkipWhileIn(lookup.Whitespace)

	attr.HasValue = true
	switch {
	case t.cur.ShiftIf('"'):
		attr.Quote = '"'
		attr.Value = t.cur.CopyWhileNotIn(lookup.DoubleQuote)
		if !t.cur.ShiftIf('"') {
			return Attr{}, false
		}
	case t.cur.ShiftIf('\''):
		attr.Quote = '\''
		attr.Value = t.cur.CopyWhileNotIn(lookup.SingleQuote)
		if !t.cur.ShiftIf('\'') {
			return Attr{}, false
		}
	default:
		attr.Value = t.cur.CopyWhileIn(lookup.AttrUnquotedValueChar)
	}

	return attr, true
}
