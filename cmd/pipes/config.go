package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration file, or with --resolved the configuration
in effect after merging the config file and flags.

Config files are searched in this order, the first one found wins:
  --config <path>
  $XDG_CONFIG_HOME/pipes/config.yaml
  ~/.pipes/config.yaml
  ./configs/pipes.yaml

Examples:
  pipes config > ~/.config/pipes/config.yaml
  pipes config --resolved -p 3 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the merged configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagResolved {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := cfg.Resolve(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path == "" {
		path = "built-in defaults"
	}
	fmt.Fprintf(out, "# loaded from %s\n", path)
	_, err = out.Write(data)
	return err
}
