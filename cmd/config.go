package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gomech configuration",
	Long: `gomech reads, in order of precedence:
  1. command line flags
  2. GOMECH_* environment variables (e.g. GOMECH_UNITS_SYSTEM=imperial)
  3. --config, else ./gomech.yaml, else $XDG_CONFIG_HOME/gomech/config.yaml
  4. built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := cfgPath
		if src == "" {
			src = "defaults"
		}
		fmt.Fprintln(out, SubtitleStyle.Render("# source: "+src))
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user configuration directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
