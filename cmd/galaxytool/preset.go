package main

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/galaxy/internal/config"
)

func newPresetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset",
		Short: "Print the default config as YAML",
		Long: `Print the default config as YAML.

Redirect it into the config directory to get a starting point for editing:
  galaxytool preset > ~/.config/galaxy/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
