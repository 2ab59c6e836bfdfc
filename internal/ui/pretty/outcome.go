package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/runner"
)

// maxTokenPreview is the number of bytes of token text shown in listings.
const maxTokenPreview = 40

// FormatOutcome formats one file's scan result as a single line:
//
//	path  kind  N segments, M tokens
//
// Failed files show the error instead of the counts.
func (s *Styles) FormatOutcome(file *runner.FileOutcome) string {
	if file.Error != nil {
		return fmt.Sprintf("%s  %s  %s\n",
			s.FilePath.Render(file.Path),
			s.Error.Render("error"),
			file.Error.Error(),
		)
	}

	return fmt.Sprintf("%s  %s  %s, %s\n",
		s.FilePath.Render(file.Path),
		s.SourceKind.Render(string(file.Kind)),
		plural(len(file.Segments), "segment"),
		plural(file.TokenCount(), "token"),
	)
}

// FormatToken formats a token as an indented listing line:
//
//	[start,end)  Kind  name  "preview"
//
// The preview is taken from content when it covers the token.
func (s *Styles) FormatToken(tok *markup.Token, content []byte) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(s.Location.Render(fmt.Sprintf("[%d,%d)", tok.StartOffset, tok.EndOffset)))
	builder.WriteString("  ")
	builder.WriteString(s.TokenStyle(tok.Kind).Render(fmt.Sprintf("%-11s", tok.Kind.String())))

	if len(tok.Name) > 0 {
		builder.WriteString("  ")
		builder.WriteString(s.TagName.Render(string(tok.Name)))
	}

	if text := tok.Text(content); text != nil {
		builder.WriteString("  ")
		builder.WriteString(s.Dim.Render(preview(text)))
	}

	builder.WriteString("\n")
	return builder.String()
}

// preview quotes text, truncated to maxTokenPreview bytes.
func preview(text []byte) string {
	if len(text) > maxTokenPreview {
		return fmt.Sprintf("%q...", text[:maxTokenPreview])
	}
	return fmt.Sprintf("%q", text)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
