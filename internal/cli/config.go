package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markscan/internal/configloader"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as YAML",
		Long: `Print the configuration after merging system, user, project, and explicit
config files with MARKSCAN_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
				WorkingDir:   workDir,
				ExplicitPath: configPath,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range loaded.LoadedFrom {
				fmt.Fprintf(out, "# loaded from %s\n", path)
			}
			for _, warning := range loaded.Warnings {
				fmt.Fprintf(out, "# warning: %s\n", warning)
			}

			data, err := loaded.Config.ToYAML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the supported environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := configloader.ListEnvVars()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", name, vars[name])
			}
		},
	})

	return cmd
}
