// goatclimb is an endless vertical platformer for the terminal.
//
// Usage:
//
//	goatclimb                 - Play (same as "goatclimb play")
//	goatclimb play            - Play the game
//	goatclimb scores          - Show recorded runs and the best score
//	goatclimb config show     - Print the default configuration
//	goatclimb config path     - Show which configuration file is used
//	goatclimb config check    - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.goatclimb/scores.db)
//	--log-file <path>   - Set log file (default: ~/.goatclimb/goatclimb.log)
//	--log-level <level> - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goatclimb",
	Short: "Goat Climb - bounce a goat up an endless mountain",
	Long: `Goat Climb is an endless vertical platformer for your terminal.
Steer the goat left and right; it bounces on every platform it lands on.
Climb as high as you can without falling off the bottom of the screen.

Available commands:
  play     - Play the game (default)
  scores   - View recorded runs
  config   - Inspect and validate configuration

Examples:
  goatclimb
  goatclimb play --difficulty hard
  goatclimb play --config ./climb.yaml --watch
  goatclimb scores`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goatclimb/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.goatclimb/goatclimb.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
