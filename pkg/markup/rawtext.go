package markup

// rawTextBody consumes the body of a raw-text element up to, but not
// including, its end tag. Without an end tag the body runs to end of input.
func (t *tokenizer) rawTextBody(name []byte) {
	bodyStart := t.cur.Pos()

	for !t.cur.AtEnd() {
		t.cur.SkipWhileIn(notLt)
		if t.atRawTextEnd(name) {
			break
		}
		t.cur.ShiftIf('<')
	}

	if t.cur.Pos() > bodyStart {
		t.emit(Token{Kind: TokRawText, StartOffset: bodyStart, Name: name})
	}
}

// atRawTextEnd reports whether the cursor is at "</name" followed by
// whitespace, '/', '>', or end of input. Matching is ASCII case-insensitive.
func (t *tokenizer) atRawTextEnd(name []byte) bool {
	if b, ok := t.cur.Peek(1); !ok || b != '/' {
		return false
	}

	rest := t.cur.Rest()
	if len(rest) < len(name)+2 || !equalFoldASCII(rest[2:len(name)+2], string(name)) {
		return false
	}

	b, ok := t.cur.Peek(len(name) + 2)
	return !ok || rawEndTerm.Has(b)
}
