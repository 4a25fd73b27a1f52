package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firerun/internal/config"
)

var flagDumpTOML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config",
	Long: `Print the config a run would use, after the search order and the
--preset flag are applied. The output is a valid config file.

Search order:
  1. --config path
  2. ~/.firerun/configs/firefighter.{yaml,toml}
  3. ./configs/firefighter.{yaml,toml}
  4. Embedded defaults

Examples:
  firerun config dump > ~/.firerun/configs/firefighter.yaml
  firerun config dump --toml --preset hard`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDumpTOML, "toml", false, "Print TOML instead of YAML")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadFirefighter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagPreset); preset != "" {
		config.ApplyFirefighterPreset(&cfg, preset)
	}

	format := config.FormatYAML
	if flagDumpTOML {
		format = config.FormatTOML
	}
	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
}
