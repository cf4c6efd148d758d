package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snaky/internal/config"
	"github.com/vovakirdan/snaky/internal/core"
	"github.com/vovakirdan/snaky/internal/games/snake"
	"github.com/vovakirdan/snaky/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Steer a snake around the board. The snake starts one cell long and
grows while it digests; every food eaten adds one more cell.

Controls:
  Arrows/WASD  - Turn
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  snaky play
  snaky play --difficulty hard
  snaky play --width 30 --height 15
  snaky play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (0 = config or fit to terminal)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (0 = config or fit to terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs would garble the alternate screen unless sent to a file
	logger, closeLog, err := newLogger(io.Discard, "snaky")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "difficulty", flagDifficulty)
	game := snake.New(cfg, snake.WithLogger(logger))
	if err := tui.Run(game, logger, rc); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
