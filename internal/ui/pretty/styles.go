// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/markscan/pkg/markup"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// File and token components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	SourceKind lipgloss.Style
	TagName    lipgloss.Style
	Tag        lipgloss.Style
	Text       lipgloss.Style
	Comment    lipgloss.Style
	Directive  lipgloss.Style
	RawText    lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableSkipRow   lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   dim,
		SourceKind: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TagName:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Text:       lipgloss.NewStyle(),
		Comment:    dim.Italic(true),
		Directive:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		RawText:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableErrorRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TableSkipRow:   dim,
		TableSeparator: dim,

		Dim:  dim,
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Success:        plain,
		Failure:        plain,
		FilePath:       plain,
		Location:       plain,
		SourceKind:     plain,
		TagName:        plain,
		Tag:            plain,
		Text:           plain,
		Comment:        plain,
		Directive:      plain,
		RawText:        plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableSkipRow:   plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// TokenStyle returns the style used for tokens of the given kind.
func (s *Styles) TokenStyle(kind markup.TokenKind) lipgloss.Style {
	switch kind {
	case markup.TokStartTag, markup.TokEndTag:
		return s.Tag
	case markup.TokComment:
		return s.Comment
	case markup.TokBang, markup.TokInstruction, markup.TokCDATA:
		return s.Directive
	case markup.TokRawText:
		return s.RawText
	default:
		return s.Text
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
