package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markscan/internal/configloader"
	"github.com/yaklabco/markscan/internal/logging"
	"github.com/yaklabco/markscan/pkg/config"
)

// defaultConfigFile is the file written by init when --output is not set.
const defaultConfigFile = ".markscan.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a markscan configuration file",
		Long: `Create a .markscan.yml configuration file in the current directory
holding the default settings.`,
		Example: `  markscan init
  markscan init --force
  markscan init --output config/markscan.yml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	if _, err := os.Stat(flags.output); err == nil && flags.force {
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	err := configloader.WriteConfig(config.NewConfig(), flags.output, flags.force)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %q already exists; use --force to overwrite", ErrInvalidUsage, flags.output)
	}
	if err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'markscan config env' to see the environment overrides")

	return nil
}
