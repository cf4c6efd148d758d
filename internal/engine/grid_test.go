package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func TestNewGridRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative width", -1, 2},
		{"both zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.w, tc.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestNewGridStartsEmpty(t *testing.T) {
	g := mustGrid(t, 4, 3)

	if g.Width() != 4 || g.Height() != 3 || g.Area() != 12 {
		t.Errorf("expected 4x3 grid with 12 cells, got %dx%d with %d", g.Width(), g.Height(), g.Area())
	}
	if n := g.Count(CellEmpty); n != 12 {
		t.Errorf("expected 12 empty cells, got %d", n)
	}
}

func TestGridValidate(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.set(P(1, 1), CellSnake)
	g.set(P(3, 2), CellFood)

	tests := []struct {
		pos      Position
		expected CellState
	}{
		{P(0, 0), CellEmpty},
		{P(1, 1), CellSnake},
		{P(3, 2), CellFood},
		{P(-1, 0), CellOutside},
		{P(0, -1), CellOutside},
		{P(4, 0), CellOutside},
		{P(0, 3), CellOutside},
		{P(4, 3), CellOutside},
	}

	for _, tc := range tests {
		if got := g.Validate(tc.pos); got != tc.expected {
			t.Errorf("Validate(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestGridValidateOutsideIsIdempotent(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.set(P(1, 1), CellFood)
	before := g.String()

	for i := 0; i < 10; i++ {
		if got := g.Validate(P(7, -2)); got != CellOutside {
			t.Fatalf("call %d: Validate = %v, expected outside", i, got)
		}
	}

	if after := g.String(); after != before {
		t.Errorf("grid changed by Validate:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestGridRandomEmptyFindsLastCell(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := mustGrid(t, 4, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				g.set(P(x, y), CellSnake)
			}
		}
		g.set(P(2, 1), CellEmpty)

		p, ok := g.RandomEmpty(rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: expected to find the last empty cell", seed)
		}
		if p != P(2, 1) {
			t.Fatalf("seed %d: expected (2,1), got %v", seed, p)
		}
	}
}

func TestGridRandomEmptySaturated(t *testing.T) {
	g := mustGrid(t, 3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			g.set(P(x, y), CellSnake)
		}
	}
	g.set(P(0, 0), CellFood)

	if p, ok := g.RandomEmpty(rand.New(rand.NewSource(1))); ok {
		t.Errorf("expected no empty cell on a saturated grid, got %v", p)
	}
}

func TestGridRandomEmptyReturnsOnlyEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := mustGrid(t, 10, 10)

	// Fill roughly two thirds of the grid
	for i := 0; i < 100; i++ {
		if rng.Intn(3) != 0 {
			g.set(g.position(i), CellSnake)
		}
	}

	for i := 0; i < 200; i++ {
		p, ok := g.RandomEmpty(rng)
		if !ok {
			t.Fatal("expected an empty cell")
		}
		if g.Validate(p) != CellEmpty {
			t.Fatalf("RandomEmpty returned %v which is %v", p, g.Validate(p))
		}
	}
}

func TestGridRandomEmptyCoversAllEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := mustGrid(t, 3, 1)
	g.set(P(1, 0), CellSnake)

	seen := make(map[Position]bool)
	for i := 0; i < 200; i++ {
		p, ok := g.RandomEmpty(rng)
		if !ok {
			t.Fatal("expected an empty cell")
		}
		seen[p] = true
	}

	if len(seen) != 2 || !seen[P(0, 0)] || !seen[P(2, 0)] {
		t.Errorf("expected both empty cells to be drawn, got %v", seen)
	}
}

func TestGridString(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.set(P(1, 0), CellFood)
	g.set(P(0, 1), CellSnake)

	expected := "+,@,+\n#,+,+"
	if got := g.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestCellStateGlyphs(t *testing.T) {
	tests := []struct {
		state CellState
		glyph rune
		name  string
	}{
		{CellOutside, '*', "outside"},
		{CellEmpty, '+', "empty"},
		{CellFood, '@', "food"},
		{CellSnake, '#', "snake"},
	}

	for _, tc := range tests {
		if got := tc.state.Glyph(); got != tc.glyph {
			t.Errorf("%v.Glyph() = %q, expected %q", tc.state, got, tc.glyph)
		}
		if got := tc.state.String(); got != tc.name {
			t.Errorf("String() = %q, expected %q", got, tc.name)
		}
	}
}
