package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/markscan/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	minStatusWidth   = 6
	numberWidth      = 8
	kindWidth        = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single file row in the scan table.
type TableRow struct {
	File     string
	Kind     string
	Segments int
	Tokens   int
	Bytes    int64
	Status   string
	Failed   bool
	Skipped  bool
}

// TableFormatter formats scan results as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter. A non-positive
// termWidth selects a default width.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	file   int
	status int
}

// FormatTable formats runner results as a table with one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for i := range result.Files {
		rows = append(rows, OutcomeToTableRow(&result.Files[i]))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// OutcomeToTableRow converts a file outcome to a table row.
func OutcomeToTableRow(file *runner.FileOutcome) TableRow {
	row := TableRow{
		File:     file.Path,
		Kind:     string(file.Kind),
		Segments: len(file.Segments),
		Tokens:   file.TokenCount(),
		Status:   "ok",
	}

	if file.Info != nil {
		row.Bytes = file.Info.Size
	}

	switch {
	case file.Error != nil:
		row.Failed = true
		row.Status = file.Error.Error()
	case len(file.Segments) == 0:
		row.Skipped = true
		row.Status = "no markup"
	}

	return row
}

// calculateColumnWidths sizes the FILE and STATUS columns to fit the
// content, shrinking STATUS and then FILE to stay within the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{file: minFileWidth, status: minStatusWidth}

	for _, row := range rows {
		widths.file = max(widths.file, len(row.File))
		widths.status = max(widths.status, len(row.Status))
	}

	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.status = max(minStatusWidth, widths.status-excess)
	}
	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) totalWidth(widths columnWidths) int {
	const columns = 6
	return 1 + widths.file + kindWidth + 3*numberWidth + widths.status + tablePadding*(columns-1)
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		kindWidth, "KIND",
		numberWidth, "SEGMENTS",
		numberWidth, "TOKENS",
		numberWidth, "BYTES",
		widths.status, "STATUS",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %*d  %*d  %*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		kindWidth, truncateString(row.Kind, kindWidth),
		numberWidth, row.Segments,
		numberWidth, row.Tokens,
		numberWidth, strconv.FormatInt(row.Bytes, 10),
		widths.status, truncateString(row.Status, widths.status),
	)

	return t.rowStyle(row).Render(content)
}

func (t *TableFormatter) rowStyle(row TableRow) lipgloss.Style {
	switch {
	case row.Failed:
		return t.styles.TableErrorRow
	case row.Skipped:
		return t.styles.TableSkipRow
	default:
		return lipgloss.NewStyle()
	}
}

// FormatTableSummary formats a one-line footer for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{
		plural(stats.FilesScanned, "file") + " scanned",
		plural(stats.Tokens, "token"),
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, keeping the end (file name).
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
