//go:build !release

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/garrettladley/lyra/internal/config"
	"github.com/garrettladley/lyra/internal/paths"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(configCmd())
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  "Prints defaults merged with the config file and LYRA_* environment as YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.ConfigFile()
			if err != nil {
				return err
			}

			cfg, err := config.Read(path)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, out)
			return nil
		},
	}
}
