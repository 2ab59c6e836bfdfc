// Package cli provides the Cobra command structure for markscan.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root markscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "markscan",
		Short: "A zero-copy tokenizer for HTML, XML, and SVG",
		Long: `markscan tokenizes markup with a single-pass, backtracking byte cursor.

It scans HTML, XML, and SVG files, and the raw HTML embedded in Markdown,
into a contiguous stream of tags, text, comments, and declarations. Results
can be printed as text, a table, JSON, or an aggregate summary.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newClassesCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
