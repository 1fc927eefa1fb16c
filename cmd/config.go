package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/spatialnav/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged configuration",
	Long: `Print the embedded defaults merged with the user config file.

The user file is --config-file, else $XDG_CONFIG_HOME/spatialnav/config.yaml
or ~/.config/spatialnav/config.yaml when present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		out, err := config.Encode(cfg, configOutput)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
