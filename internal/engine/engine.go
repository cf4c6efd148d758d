package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Handler is notified of a snake outcome. Handlers run synchronously inside
// Step, so they must not call Step themselves.
type Handler func(e *Engine, s *Snake)

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes every random choice of the engine reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger routes engine events to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns the grid and the snakes and advances them one tick at a time.
// It does not own timing: a driver calls Step once per logical tick.
type Engine struct {
	grid   *Grid
	snakes []*Snake
	nextID int
	tick   uint64

	rng    *rand.Rand
	logger *log.Logger

	onKill Handler
	onWin  Handler
}

// New creates an engine with an empty width×height grid.
// onKill and onWin may be nil, in which case those events are dropped.
func New(width, height int, onKill, onWin Handler, opts ...Option) (*Engine, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		grid:   grid,
		onKill: onKill,
		onWin:  onWin,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e, nil
}

// Width returns the grid width.
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the grid height.
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Tick returns the number of completed steps.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Grid exposes the grid for read-only queries.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Cell returns the state of (x, y); CellOutside beyond the bounds.
func (e *Engine) Cell(x, y int) CellState {
	return e.grid.Validate(Position{X: x, Y: y})
}

// Food returns the first food cell in row-major order, if any.
func (e *Engine) Food() (Position, bool) {
	for i, c := range e.grid.cells {
		if c == CellFood {
			return e.grid.position(i), true
		}
	}
	return Position{}, false
}

// Snakes returns every hatched snake, dead or alive, in hatch order.
func (e *Engine) Snakes() []*Snake {
	out := make([]*Snake, len(e.snakes))
	copy(out, e.snakes)
	return out
}

// Living returns the snakes still taking part, in hatch order.
func (e *Engine) Living() []*Snake {
	out := make([]*Snake, 0, len(e.snakes))
	for _, s := range e.snakes {
		if s.alive {
			out = append(out, s)
		}
	}
	return out
}

// Snake looks a snake up by ID.
func (e *Engine) Snake(id int) (*Snake, bool) {
	for _, s := range e.snakes {
		if s.id == id {
			return s, true
		}
	}
	return nil, false
}

// SetDirection forwards a heading change to a living snake.
// It reports false when no living snake has that ID.
func (e *Engine) SetDirection(id int, dir Direction) (Direction, bool) {
	s, ok := e.Snake(id)
	if !ok || !s.alive {
		return dir, false
	}
	return s.SetDirection(dir), true
}

// HatchSnake places a new snake on a random empty cell with a random heading.
// The snake starts one cell long and owes size units of growth.
// It reports false when no empty cell could be found.
func (e *Engine) HatchSnake(size int) (*Snake, bool) {
	head, ok := e.grid.RandomEmpty(e.rng)
	if !ok {
		e.logger.Debug("no room to hatch snake", "tick", e.tick)
		return nil, false
	}
	dir := Directions[e.rng.Intn(len(Directions))]
	return e.hatchAt(head, dir, size), true
}

// hatchAt registers a snake at a known empty cell.
func (e *Engine) hatchAt(head Position, dir Direction, size int) *Snake {
	e.nextID++
	s := newSnake(e.nextID, head, dir, size)
	e.grid.set(head, CellSnake)
	e.snakes = append(e.snakes, s)
	e.logger.Debug("snake hatched", "id", s.id, "head", head, "dir", dir, "growth", s.pendingGrowth)
	return s
}

// SpawnFood marks a random empty cell as food.
// It reports false when the grid is saturated.
func (e *Engine) SpawnFood() (Position, bool) {
	p, ok := e.grid.RandomEmpty(e.rng)
	if !ok {
		e.logger.Debug("no room to spawn food", "tick", e.tick)
		return Position{}, false
	}
	e.grid.set(p, CellFood)
	return p, true
}

// Step advances every living snake by one cell, in a fresh random order.
//
// For each snake: the head moves, the vacated tail cell (if any) is cleared,
// then the new head cell is classified. Food grows the snake and respawns
// food; if no empty cell is left for the respawn the snake wins. An empty
// cell is simply taken. A wall or any snake cell kills the snake. The dead
// snake's cells stay on the grid while onKill runs and are released after it
// returns.
func (e *Engine) Step() Report {
	e.tick++

	order := e.Living()
	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	report := Report{
		Tick:     e.tick,
		Outcomes: make([]Outcome, 0, len(order)),
	}

	for _, s := range order {
		if !s.alive {
			continue
		}

		head, freed, freedOK := s.advance()
		if freedOK {
			e.grid.set(freed, CellEmpty)
		}

		out := Outcome{SnakeID: s.id, Head: head, State: e.grid.Validate(head)}

		switch out.State {
		case CellFood:
			s.grow()
			e.grid.set(head, CellSnake)
			if _, ok := e.SpawnFood(); !ok {
				out.Won = true
				e.win(s)
			}
		case CellEmpty:
			e.grid.set(head, CellSnake)
		default:
			e.kill(s)
		}

		report.Outcomes = append(report.Outcomes, out)
	}

	return report
}

// kill retires a snake that moved into a wall or a snake cell.
// The handler sees the body still on the grid; the cells are released after.
func (e *Engine) kill(s *Snake) {
	s.retractHead()
	s.alive = false

	e.logger.Info("snake killed", "id", s.id, "at", s.head, "size", s.Size(), "tick", e.tick)
	if e.onKill != nil {
		e.onKill(e, s)
	}

	for _, p := range s.body {
		e.grid.set(p, CellEmpty)
	}
}

func (e *Engine) win(s *Snake) {
	e.logger.Info("grid saturated", "id", s.id, "size", s.Size(), "tick", e.tick)
	if e.onWin != nil {
		e.onWin(e, s)
	}
}

// String renders the grid as a glyph matrix.
func (e *Engine) String() string {
	return e.grid.String()
}
