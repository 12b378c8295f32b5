package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goat-climb/internal/climb"
	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
	"github.com/vovakirdan/goat-climb/internal/platform/tui"
	"github.com/vovakirdan/goat-climb/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Goat Climb",
	Long: `Start a game of Goat Climb.

Controls:
  Left/A, Right/D  - Steer
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Platforms:
  ▬ normal    ≋ bouncy (higher jump)
  ╍ breaking  ═ moving

Power-ups:
  ↑ super jump      ◆ invincibility

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  goatclimb play
  goatclimb play --difficulty hard
  goatclimb play --seed 42
  goatclimb play --config ./climb.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares
// them so that a bare "goatclimb" plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies on the next run)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		logger = log.New(io.Discard)
	} else {
		defer closer.Close()
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	cfg, err := config.LoadClimb(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "path", config.Resolve(flagConfig), "difficulty", string(preset))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := []climb.Option{
		climb.WithConfig(cfg),
		climb.WithDifficulty(preset),
	}
	if flagSeed != 0 {
		opts = append(opts, climb.WithRand(climb.NewRand(flagSeed)))
	}
	if store != nil {
		opts = append(opts, climb.WithStore(storage.NewBestScore(store, climb.ID)))
	}
	game := climb.New(opts...)

	var watcher *config.Watcher
	if flagWatch {
		if path := config.Resolve(flagConfig); path == "" {
			logger.Warn("nothing to watch, using the embedded config")
		} else if watcher, err = config.NewWatcher(path); err != nil {
			logger.Warn("could not watch config", "path", path, "error", err)
			watcher = nil
		} else {
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	runErr := tui.Run(game, runtime, tui.Options{
		Store:   store,
		Logger:  logger,
		Watcher: watcher,
	})

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game crashed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
