// Package snake is the playable snake game: one player snake driven by the
// simulation engine, rendered onto a core.Screen.
package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snaky/internal/config"
	"github.com/vovakirdan/snaky/internal/core"
	"github.com/vovakirdan/snaky/internal/engine"
)

const (
	hudHeight = 2 // Status line and separator
	minBoardW = 4
	minBoardH = 4
)

// Option configures a Game.
type Option func(*Game)

// WithLogger routes game and engine events to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// Game implements the snake game on top of engine.Engine.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	rng    *rand.Rand // Seeds the engine
	engine *engine.Engine
	player *engine.Snake

	tick           uint64 // Frames since Reset
	score          int
	moveEveryTicks int
	moveTicker     int // Counts frames until next engine step
	lastReport     engine.Report
	deadBody       []engine.Position // Body at the moment of death

	// Board placement on screen
	boardW  int
	boardH  int
	offsetX int
	offsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	started  bool // First directional input received
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a snake game with the given configuration.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.moveEveryTicks = g.cfg.Speed.MoveEveryTicks
	g.lastReport = engine.Report{}
	g.deadBody = nil
	g.started = false
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.engine = nil
	g.player = nil
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.layout()
	if g.tooSmall {
		g.logger.Warn("screen too small for board", "screen", fmt.Sprintf("%dx%d", g.screenW, g.screenH))
		return
	}

	e, err := engine.New(g.boardW, g.boardH, g.onKill, g.onWin,
		engine.WithSeed(g.rng.Int63()),
		engine.WithLogger(g.logger),
	)
	if err != nil {
		// layout guarantees a positive board
		g.logger.Error("failed to create engine", "error", err)
		g.tooSmall = true
		return
	}
	g.engine = e

	player, ok := e.HatchSnake(g.cfg.Snake.HatchSize)
	if !ok {
		g.tooSmall = true
		return
	}
	g.player = player
	e.SpawnFood()

	g.logger.Debug("game reset", "board", fmt.Sprintf("%dx%d", g.boardW, g.boardH), "seed", rc.Seed)
}

// layout sizes the board from config or the screen and centers it.
// The board is framed by a one-cell border below the HUD.
func (g *Game) layout() {
	availW := g.screenW - 2
	availH := g.screenH - hudHeight - 2

	// Fitted boards need some room to play; configured ones are taken as given
	minW, minH := 1, 1
	g.boardW, g.boardH = g.cfg.Grid.Width, g.cfg.Grid.Height
	if g.boardW <= 0 {
		g.boardW, minW = availW, minBoardW
	}
	if g.boardH <= 0 {
		g.boardH, minH = availH, minBoardH
	}

	if g.boardW < minW || g.boardH < minH || g.boardW > availW || g.boardH > availH {
		g.tooSmall = true
		return
	}

	g.offsetX = (g.screenW - g.boardW) / 2
	g.offsetY = hudHeight + 1 + (availH-g.boardH)/2
}

func (g *Game) onKill(_ *engine.Engine, s *engine.Snake) {
	if s != g.player {
		return
	}
	g.gameOver = true
	g.deadBody = s.Body()
	g.logger.Info("game over", "score", g.score, "size", s.Size(), "frames", g.tick)
}

func (g *Game) onWin(_ *engine.Engine, s *engine.Snake) {
	if s != g.player {
		return
	}
	g.won = true
	g.logger.Info("board filled", "score", g.score, "size", s.Size(), "frames", g.tick)
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.started {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	if !g.started {
		return core.StepResult{State: g.State()}
	}

	// Step the engine on the move interval
	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	report := g.engine.Step()
	g.lastReport = report
	if out, ok := report.For(g.player.ID()); ok && out.State == engine.CellFood {
		g.score++
	}
	g.moveEveryTicks = g.difficulty.MoveInterval(
		g.cfg.Speed.MoveEveryTicks, g.cfg.Speed.MinMoveEveryTicks, g.score, int(g.engine.Tick()))

	return core.StepResult{State: g.State(), Moved: true}
}

// processInput forwards turns to the player in arrival order.
// The snake itself rejects reversals of its last step.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Turns {
		dir, ok := actionDirection(a)
		if !ok {
			continue
		}
		g.engine.SetDirection(g.player.ID(), dir)
		g.started = true
	}
}

func actionDirection(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation, nil while the screen is too small.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// LastReport returns the report of the most recent engine step.
func (g *Game) LastReport() engine.Report {
	return g.lastReport
}
