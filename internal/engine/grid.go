package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("engine: grid dimensions must be positive")

// Grid is the W×H cell-state matrix.
// Cells are stored in row-major order: index = y*W + x.
// Every stored cell is one of CellEmpty, CellFood or CellSnake.
type Grid struct {
	w     int
	h     int
	cells []CellState
}

// NewGrid creates a grid with every cell empty.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]CellState, w*h), // zero value is CellEmpty
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// Area returns the number of cells.
func (g *Grid) Area() int {
	return len(g.cells)
}

func (g *Grid) index(p Position) int {
	return p.Y*g.w + p.X
}

func (g *Grid) position(i int) Position {
	return Position{X: i % g.w, Y: i / g.w}
}

// InBounds returns true if the position lies within [0,W)×[0,H).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Validate classifies a position. Out-of-bounds positions are CellOutside.
// It never mutates the grid.
func (g *Grid) Validate(p Position) CellState {
	if !g.InBounds(p) {
		return CellOutside
	}
	return g.cells[g.index(p)]
}

// set writes a cell unconditionally. Callers validate the position first.
func (g *Grid) set(p Position, s CellState) {
	g.cells[g.index(p)] = s
}

// Count returns the number of cells holding the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// RandomEmpty draws uniformly random positions until an empty one turns up,
// within a budget of W×H draws. Draws are made without replacement, so the
// budget runs out exactly when the grid holds no empty cell; that is the
// saturation signal callers react to.
func (g *Grid) RandomEmpty(rng *rand.Rand) (Position, bool) {
	n := len(g.cells)

	// Lazy Fisher-Yates over cell indices: only displaced slots are stored.
	var moved map[int]int
	at := func(k int) int {
		if v, ok := moved[k]; ok {
			return v
		}
		return k
	}

	for try := 0; try < n; try++ {
		j := try + rng.Intn(n-try)
		idx := at(j)
		if g.cells[idx] == CellEmpty {
			return g.position(idx), true
		}
		if moved == nil {
			moved = make(map[int]int)
		}
		moved[j] = at(try)
	}
	return Position{}, false
}

// String renders the grid one row per line, cells separated by commas.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(2*len(g.cells) + g.h)

	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteRune(g.cells[y*g.w+x].Glyph())
		}
	}
	return sb.String()
}
