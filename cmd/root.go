// Package cmd contains the gomech command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/config"
	"github.com/alexiusacademia/gomech/internal/dataset"
	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/units"
	"github.com/alexiusacademia/gomech/internal/version"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	systemFlag string
	dataDir    string
	sqliteFile string

	// Resolved by loadRuntime before any subcommand runs
	cfg     *config.Config
	cfgPath string
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	catalog = units.StandardCatalog()
	loader  *dataset.Loader
	system  record.UnitSystem
)

var rootCmd = &cobra.Command{
	Use:   "gomech",
	Short: "Mechanical engineering design calculations",
	Long: TitleStyle.Render("gomech") + SubtitleStyle.Render(" - Go Mechanical Design Toolbox") + `

A CLI toolbox of unit-aware mechanical engineering calculations:
  - Unit conversion with dimension checking
  - Material, fastener and rolled shape property lookup
  - Stress, strain and plane stress transformation
  - Cross-section area properties
  - Gear geometry, bearing life and spring rates

Every input is a quantity with a unit, e.g. "1000 lbf" or "12.5 in^2".`,
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomech v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Mechanical Design Toolbox                            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Unit conversion between SI and US customary units")
		fmt.Println("    • Material, thread, bolt grade and wide-flange lookups")
		fmt.Println("    • Stress, strain and plane stress transformation")
		fmt.Println("    • Section properties of standard and polygon shapes")
		fmt.Println("    • Spur gears, rolling bearings and springs")
		fmt.Println()
		fmt.Printf("  Unit system: %s\n", CmdStyle.Render(system.String()))
		fmt.Println("  Use 'gomech --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gomech.yaml or $XDG_CONFIG_HOME/gomech/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&systemFlag, "system", "s", "", "unit system for looked-up records: si or imperial")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory of <dataset>.csv/.yaml overrides")
	rootCmd.PersistentFlags().StringVar(&sqliteFile, "sqlite", "", "SQLite file holding dataset overrides")
}

// loadRuntime resolves configuration, with flags taking precedence, and
// prepares the shared logger and dataset loader.
func loadRuntime(cmd *cobra.Command, args []string) error {
	var err error
	cfg, cfgPath, err = config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	logger.SetLevel(cfg.LogLevel())
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	}

	system = cfg.UnitSystem()
	if systemFlag != "" {
		if system, err = record.ParseUnitSystem(systemFlag); err != nil {
			return err
		}
	}

	loader = &dataset.Loader{
		Dir:     firstNonEmpty(dataDir, cfg.Data.Dir),
		SQLite:  firstNonEmpty(sqliteFile, cfg.Data.SQLite),
		Catalog: catalog,
		Logger:  logger,
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
