package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markscan/internal/configloader"
	"github.com/yaklabco/markscan/internal/logging"
	"github.com/yaklabco/markscan/pkg/config"
	"github.com/yaklabco/markscan/pkg/reporter"
	"github.com/yaklabco/markscan/pkg/runner"
)

// scanFlags holds the flags for the scan command.
type scanFlags struct {
	format          string
	jobs            int
	ignore          []string
	extensions      []string
	rawText         []string
	flavor          string
	maxFileSize     int64
	noMarkdown      bool
	summary         bool
	tokens          bool
	compact         bool
	followSymlinks  bool
	noProjectConfig bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Tokenize markup files",
		Long: `Scan files and directories for HTML, XML, and SVG markup and tokenize it.

Directories are walked recursively. Markdown files contribute only their raw
HTML blocks and inline tags. With no paths, the current directory is scanned.`,
		Example: `  markscan scan
  markscan scan docs/ index.html
  markscan scan --format json --tokens site/
  markscan scan --ignore "vendor/**" --jobs 4 .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, flags, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.format, "format", "f", "", "output format: text, table, json, summary")
	fs.IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	fs.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to exclude (repeatable)")
	fs.StringSliceVar(&flags.extensions, "ext", nil, "file extensions to scan, e.g. .html,.svg")
	fs.StringSliceVar(&flags.rawText, "raw-text", nil, "elements whose content is not parsed as markup")
	fs.StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm")
	fs.Int64Var(&flags.maxFileSize, "max-size", 0, "skip files larger than this many bytes (negative = no limit)")
	fs.BoolVar(&flags.noMarkdown, "no-markdown", false, "do not extract HTML from markdown files")
	fs.BoolVar(&flags.summary, "summary", false, "print a summary after the results")
	fs.BoolVar(&flags.tokens, "tokens", false, "list every token of every file")
	fs.BoolVar(&flags.compact, "compact", false, "compact JSON output")
	fs.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symlinked directories")
	fs.BoolVar(&flags.noProjectConfig, "no-project-config", false, "ignore .markscan.yml files")

	return cmd
}

// cliConfig builds the configuration layer contributed by flags that were
// set on the command line.
func (f *scanFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format := config.OutputFormat(f.format)
		if !format.IsValid() {
			return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidUsage, f.format)
		}
		cfg.Format = format
	}
	if changed("jobs") {
		if f.jobs < 0 {
			return nil, fmt.Errorf("%w: --jobs must be >= 0", ErrInvalidUsage)
		}
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("ext") {
		cfg.Extensions = f.extensions
	}
	if changed("raw-text") {
		cfg.RawTextElements = f.rawText
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
	}
	if changed("max-size") {
		cfg.MaxFileSize = f.maxFileSize
	}
	if f.noMarkdown {
		markdown := false
		cfg.Markdown = &markdown
	}
	cfg.Summary = f.summary

	return cfg, nil
}

func runScan(cmd *cobra.Command, flags *scanFlags, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        configPath,
		IgnoreProjectConfig: flags.noProjectConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return err
	}
	for _, warning := range loaded.Warnings {
		logger.Warn("config", logging.FieldError, warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded config", logging.FieldPaths, loaded.LoadedFrom)
	}

	cfg := loaded.Config

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir
	opts.FollowSymlinks = flags.followSymlinks
	opts.KeepContent = flags.tokens

	result, err := runner.New(cfg).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: cfg.Summary,
		ShowTokens:  flags.tokens,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrScanFailures
	}
	return nil
}
