package markup

import "github.com/yaklabco/markscan/pkg/lookup"

// bang consumes a declaration such as <!DOCTYPE html> after "<!".
// The keyword is recorded lower-cased in Name.
func (t *tokenizer) bang(startPos int) bool {
	keyword := lowerASCII(t.cur.CopyWhileIn(lookup.Alphanumeric))

	t.cur.SkipWhileIn(notGt)
	t.cur.ShiftIf('>')

	t.emit(Token{Kind: TokBang, StartOffset: startPos, Name: keyword})
	return true
}

// instruction consumes a processing instruction after "<?". The target
// (e.g. "xml") is recorded in Name as written.
func (t *tokenizer) instruction(startPos int) bool {
	target := t.cur.CopyWhileIn(lookup.TagNameChar)

	for !t.cur.AtEnd() {
		t.cur.SkipWhileIn(notQuestion)
		if t.cur.ShiftIfSeq([]byte("?>")) {
			break
		}
		t.cur.ShiftIf('?')
	}

	t.emit(Token{Kind: TokInstruction, StartOffset: startPos, Name: target})
	return true
}
