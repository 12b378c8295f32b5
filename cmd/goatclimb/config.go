package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goat-climb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate game configuration",
	Long: `Inspect the configuration Goat Climb plays with.

Config files are searched in this order:
  1. --config flag
  2. ~/.goatclimb/configs/climb.yaml
  3. ./configs/climb.yaml
  4. Embedded defaults

Examples:
  goatclimb config show > ~/.goatclimb/configs/climb.yaml
  goatclimb config path
  goatclimb config check ./climb.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which configuration file would be loaded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if path := config.Resolve(""); path != "" {
			fmt.Println(path)
			return
		}
		fmt.Println("(embedded defaults)")
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.LoadClimb(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: OK\n", args[0])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configCheckCmd)
}
