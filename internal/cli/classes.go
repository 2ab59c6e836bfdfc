package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markscan/internal/ui/pretty"
	"github.com/yaklabco/markscan/pkg/lookup"
)

func newClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes [name]",
		Short: "List the byte classification tables",
		Long: `List the 256-entry byte classification tables the tokenizer uses.

With a name, print every member byte of that table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			if len(args) == 1 {
				table, ok := lookup.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: unknown table %q (run 'markscan classes' for a list)",
						ErrInvalidUsage, args[0])
				}
				return writeTableMembers(cmd.OutOrStdout(), styles, args[0], table)
			}
			return writeTableList(cmd.OutOrStdout(), styles)
		},
	}
}

func writeTableList(w io.Writer, styles *pretty.Styles) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	names := lookup.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	for _, name := range names {
		table, _ := lookup.Lookup(name)
		padded := name + strings.Repeat(" ", width-len(name))
		if _, err := fmt.Fprintf(bw, "%s  %s\n",
			styles.TagName.Render(padded), styles.Dim.Render(fmt.Sprintf("%3d bytes", table.Count()))); err != nil {
			return fmt.Errorf("write table list: %w", err)
		}
	}
	return nil
}

func writeTableMembers(w io.Writer, styles *pretty.Styles, name string, table *lookup.Table) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	members := table.Members()
	if _, err := fmt.Fprintf(bw, "%s  %s\n",
		styles.Bold.Render(name), styles.Dim.Render(fmt.Sprintf("%d bytes", len(members)))); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	for _, b := range members {
		if _, err := fmt.Fprintf(bw, "  0x%02X  %s\n", b, byteLabel(b)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}

// byteLabel renders a byte as a quoted character when printable.
func byteLabel(b byte) string {
	if b < 0x80 && strconv.IsPrint(rune(b)) {
		return strconv.QuoteRune(rune(b))
	}
	return ""
}
