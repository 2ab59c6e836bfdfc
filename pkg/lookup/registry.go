package lookup

import "sort"

// Shared tables used by the markup grammar. Do not modify.
//
//nolint:gochecknoglobals // Read-only lookup tables built once at init.
var (
	// Whitespace is the HTML whitespace set: space, tab, LF, FF, CR.
	Whitespace = Of(' ', '\t', '\n', '\f', '\r')

	Digit         = Range('0', '9')
	LowerHexAlpha = Range('a', 'f')
	UpperHexAlpha = Range('A', 'F')
	HexDigit      = Union(Digit, LowerHexAlpha, UpperHexAlpha)
	LowerAlpha    = Range('a', 'z')
	UpperAlpha    = Range('A', 'Z')
	Alpha         = Union(LowerAlpha, UpperAlpha)
	Alphanumeric  = Union(Alpha, Digit)

	// TagNameChar accepts the characters allowed after the first byte of a
	// tag name, including custom-element and namespaced names.
	TagNameChar = Union(Alphanumeric, Of(':', '-', '_', '.'))

	// AttrNameChar is everything except whitespace, controls, and the
	// bytes that terminate an attribute name.
	AttrNameChar = Func(func(b byte) bool {
		if b < 0x20 || b == 0x7f {
			return false
		}
		switch b {
		case ' ', '"', '\'', '>', '/', '=':
			return false
		}
		return true
	})

	// NotUnquotedValueChar ends an unquoted attribute value.
	NotUnquotedValueChar = Union(Whitespace, Of('>'))

	// AttrUnquotedValueChar is the complement of NotUnquotedValueChar.
	AttrUnquotedValueChar = Not(NotUnquotedValueChar)

	DoubleQuote = Of('"')
	SingleQuote = Of('\'')
	Dash        = Of('-')
	Question    = Of('?')
	Gt          = Of('>')
	Lt          = Of('<')
	SlashOrGt   = Of('/', '>')
)

// registry maps stable table names to the shared tables.
//
//nolint:gochecknoglobals // Read-only registry.
var registry = map[string]*Table{
	"whitespace":               Whitespace,
	"digit":                    Digit,
	"hex_digit":                HexDigit,
	"lower_hex_alpha":          LowerHexAlpha,
	"upper_hex_alpha":          UpperHexAlpha,
	"alpha":                    Alpha,
	"alphanumeric":             Alphanumeric,
	"tag_name_char":            TagNameChar,
	"attr_name_char":           AttrNameChar,
	"attr_unquoted_value_char": AttrUnquotedValueChar,
	"not_unquoted_value_char":  NotUnquotedValueChar,
	"double_quote":             DoubleQuote,
	"single_quote":             SingleQuote,
	"dash":                     Dash,
	"question":                 Question,
	"gt":                       Gt,
	"lt":                       Lt,
	"slash_or_gt":              SlashOrGt,
}

// Lookup returns the registered table with the given name.
func Lookup(name string) (*Table, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns the registered table names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
