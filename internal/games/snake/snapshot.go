package snake

import "github.com/vovakirdan/snaky/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting     GameStateType = "waiting"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64 // Frames
	EngineTick     uint64 // Engine steps
	Score          int
	SnakeLen       int
	Head           engine.Position
	Dir            engine.Direction
	FoodX          int
	FoodY          int
	MoveEveryTicks int
	State          GameStateType
	Board          string // Engine dump
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case !g.started:
		state = StateWaiting
	}

	snap := Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		FoodX:          -1,
		FoodY:          -1,
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}
	if g.engine != nil {
		snap.EngineTick = g.engine.Tick()
		snap.Board = g.engine.String()
		if food, ok := g.engine.Food(); ok {
			snap.FoodX, snap.FoodY = food.X, food.Y
		}
	}
	if g.player != nil {
		snap.SnakeLen = g.player.Size()
		snap.Head = g.player.Head()
		snap.Dir = g.player.Direction()
	}
	return snap
}
