package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/markscan/pkg/markup"
	"github.com/yaklabco/markscan/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "1520 tokens in 12 segments across 9 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No files to scan") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%s in %s across %s",
			plural(stats.Tokens, "token"),
			plural(stats.Segments, "segment"),
			plural(stats.FilesScanned, "file")),
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d without markup", stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	} else {
		parts[0] = s.Success.Render(parts[0])
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block with a token
// breakdown by kind.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label, value string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files scanned", s.SummaryValue.Render(strconv.Itoa(stats.FilesScanned)))
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Dim.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	row("Bytes read", s.SummaryValue.Render(strconv.FormatInt(stats.Bytes, 10)))

	builder.WriteString("\n")

	row("Segments", s.SummaryValue.Render(strconv.Itoa(stats.Segments)))
	row("Tokens", s.SummaryValue.Render(strconv.Itoa(stats.Tokens)))
	for _, kind := range markup.Kinds() {
		if n := stats.TokensByKind[kind]; n > 0 {
			row("  "+kind.String(), s.TokenStyle(kind).Render(strconv.Itoa(n)))
		}
	}

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Scan completed with failures"))
	} else {
		builder.WriteString(s.Success.Render("Scan completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
