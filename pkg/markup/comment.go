package markup

// comment consumes the rest of a comment after "<!--". An unterminated
// comment runs to the end of input.
func (t *tokenizer) comment(startPos int) bool {
	for !t.cur.AtEnd() {
		t.cur.SkipWhileIn(notDash)
		if t.cur.ShiftIfSeq([]byte("-->")) {
			break
		}
		t.cur.ShiftIf('-')
	}

	t.emit(Token{Kind: TokComment, StartOffset: startPos})
	return true
}

// cdata consumes a CDATA section after "<![CDATA[".
func (t *tokenizer) cdata(startPos int) bool {
	for !t.cur.AtEnd() {
		t.cur.SkipWhileIn(notRightSquare)
		if t.cur.ShiftIfSeq([]byte("]]>")) {
			break
		}
		t.cur.ShiftIf(']')
	}

	t.emit(Token{Kind: TokCDATA, StartOffset: startPos})
	return true
}
