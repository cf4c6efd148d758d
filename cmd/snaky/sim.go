package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snaky/internal/engine"
)

var (
	flagSimWidth  int
	flagSimHeight int
	flagSimSnakes int
	flagSimHatch  int
	flagSimTicks  int
	flagSimQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Hatch snakes on an empty grid, drop one food and step the engine,
printing the per-tick outcomes and the grid after each tick.

Snakes keep their random starting heading; nothing steers them.
Grid glyphs: + empty, @ food, # snake.

Examples:
  snaky sim
  snaky sim --snakes 4 --width 20 --height 10 --ticks 50
  snaky sim --seed 7 --quiet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, closeLog, err := newLogger(os.Stderr, "snaky-sim")
		if err != nil {
			return err
		}
		defer closeLog()

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return runSim(cmd.OutOrStdout(), logger, simOptions{
			Width:  flagSimWidth,
			Height: flagSimHeight,
			Snakes: flagSimSnakes,
			Hatch:  flagSimHatch,
			Ticks:  flagSimTicks,
			Seed:   seed,
			Quiet:  flagSimQuiet,
		})
	},
}

func init() {
	simCmd.Flags().IntVar(&flagSimWidth, "width", 10, "Grid width")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 10, "Grid height")
	simCmd.Flags().IntVar(&flagSimSnakes, "snakes", 1, "Number of snakes to hatch")
	simCmd.Flags().IntVar(&flagSimHatch, "hatch", 3, "Growth owed by each new snake")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10, "Maximum number of ticks")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the final grid and summary")
}

// simOptions configures a headless run.
type simOptions struct {
	Width, Height int
	Snakes        int
	Hatch         int
	Ticks         int
	Seed          int64
	Quiet         bool
}

var errNoSnakes = errors.New("sim: no snake could be hatched")

// runSim drives an engine for up to opts.Ticks ticks, stopping early once
// every snake is dead or the grid is full.
func runSim(w io.Writer, logger *log.Logger, opts simOptions) error {
	var kills, wins int
	onKill := func(_ *engine.Engine, s *engine.Snake) {
		kills++
		fmt.Fprintf(w, "  snake %d killed at %v, size %d\n", s.ID(), s.Head(), s.Size())
	}
	onWin := func(_ *engine.Engine, s *engine.Snake) {
		wins++
		fmt.Fprintf(w, "  snake %d filled the grid, size %d\n", s.ID(), s.Size())
	}

	e, err := engine.New(opts.Width, opts.Height, onKill, onWin,
		engine.WithSeed(opts.Seed),
		engine.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	for i := 0; i < opts.Snakes; i++ {
		if _, ok := e.HatchSnake(opts.Hatch); !ok {
			logger.Warn("grid full, hatched fewer snakes", "wanted", opts.Snakes, "hatched", i)
			break
		}
	}
	if len(e.Snakes()) == 0 {
		return errNoSnakes
	}
	e.SpawnFood()

	logger.Info("simulation started", "grid", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"snakes", len(e.Snakes()), "seed", opts.Seed)

	if !opts.Quiet {
		fmt.Fprintf(w, "tick 0\n%s\n\n", e)
	}

	for e.Tick() < uint64(opts.Ticks) && len(e.Living()) > 0 && wins == 0 {
		report := e.Step()
		if opts.Quiet {
			continue
		}
		fmt.Fprintf(w, "tick %d\n", report.Tick)
		for _, o := range report.Outcomes {
			fmt.Fprintf(w, "  snake %d -> %v %s\n", o.SnakeID, o.Head, o.State)
		}
		fmt.Fprintf(w, "%s\n\n", e)
	}

	if opts.Quiet {
		fmt.Fprintf(w, "tick %d\n%s\n\n", e.Tick(), e)
	}

	fmt.Fprintf(w, "finished after %d ticks: %d killed, %d won, %d living\n",
		e.Tick(), kills, wins, len(e.Living()))
	for _, s := range e.Snakes() {
		status := "dead"
		if s.Alive() {
			status = "alive"
		}
		fmt.Fprintf(w, "  snake %d: size %d, %s\n", s.ID(), s.Size(), status)
	}

	logger.Info("simulation finished", "ticks", e.Tick(), "killed", kills, "won", wins > 0)
	return nil
}
