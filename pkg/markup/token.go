package markup

import "strconv"

// TokenKind classifies a span of markup source.
type TokenKind uint16

// Token kinds cover every byte in the source.
const (
	TokText        TokenKind = iota
	TokStartTag              // <name attr=value>
	TokEndTag                // </name>
	TokComment               // <!-- ... -->
	TokBang                  // <!DOCTYPE ...> and other <!...> declarations
	TokCDATA                 // <![CDATA[ ... ]]>
	TokInstruction           // <? ... ?>
	TokRawText               // body of a raw-text element such as script
)

//nolint:gochecknoglobals // Read-only name table.
var tokenKindNames = [...]string{
	TokText:        "Text",
	TokStartTag:    "StartTag",
	TokEndTag:      "EndTag",
	TokComment:     "Comment",
	TokBang:        "Bang",
	TokCDATA:       "CDATA",
	TokInstruction: "Instruction",
	TokRawText:     "RawText",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns every token kind in declaration order.
func Kinds() []TokenKind {
	kinds := make([]TokenKind, len(tokenKindNames))
	for i := range kinds {
		kinds[i] = TokenKind(i)
	}
	return kinds
}

// Attr is an attribute of a start tag. Name and Value are owned copies of
// the source bytes; Value is not entity-decoded.
type Attr struct {
	Name  []byte
	Value []byte

	// Quote is '"' or '\'' for quoted values and 0 otherwise.
	Quote byte

	// HasValue is false for bare attributes such as <input disabled>.
	HasValue bool
}

// Token represents a classified span of bytes in the markup source.
// Tokens are contiguous and non-overlapping, covering [0, len(content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int

	// Name is the lower-cased tag name for tags, the declaration keyword
	// for bangs, and the target for processing instructions.
	Name []byte

	// Attrs holds start tag attributes in source order.
	Attrs []Attr

	// SelfClosing is set for start tags ending in "/>".
	SelfClosing bool
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// Attr returns the first attribute with the given (lower-case) name.
func (t Token) Attr(name string) (Attr, bool) {
	for _, a := range t.Attrs {
		if equalFoldASCII(a.Name, name) {
			return a, true
		}
	}
	return Attr{}, false
}

// ValidateTokens checks that tokens are contiguous, non-overlapping, and
// cover [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].StartOffset != 0 || tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	for i, tok := range tokens {
		if tok.EndOffset <= tok.StartOffset {
			return false
		}
		if i > 0 && tok.StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
