package engine

import "testing"

func TestSnakeAdvanceConsumesGrowth(t *testing.T) {
	s := newSnake(1, P(1, 1), DirRight, 2)

	steps := []struct {
		head    Position
		freed   Position
		freedOK bool
		size    int
		pending int
	}{
		{P(2, 1), Position{}, false, 2, 1},
		{P(3, 1), Position{}, false, 3, 0},
		{P(4, 1), P(1, 1), true, 3, 0},
		{P(5, 1), P(2, 1), true, 3, 0},
	}

	for i, want := range steps {
		head, freed, freedOK := s.advance()
		if head != want.head {
			t.Errorf("step %d: head = %v, expected %v", i, head, want.head)
		}
		if freedOK != want.freedOK || (freedOK && freed != want.freed) {
			t.Errorf("step %d: freed = %v (%v), expected %v (%v)", i, freed, freedOK, want.freed, want.freedOK)
		}
		if s.Size() != want.size {
			t.Errorf("step %d: size = %d, expected %d", i, s.Size(), want.size)
		}
		if s.PendingGrowth() != want.pending {
			t.Errorf("step %d: pending = %d, expected %d", i, s.PendingGrowth(), want.pending)
		}
		if s.Head() != want.head {
			t.Errorf("step %d: Head() = %v, expected %v", i, s.Head(), want.head)
		}
	}

	body := s.Body()
	expected := []Position{P(3, 1), P(4, 1), P(5, 1)}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
}

func TestSnakeAdvanceSetsLastStep(t *testing.T) {
	s := newSnake(1, P(5, 5), DirLeft, 0)
	s.SetDirection(DirUp)

	if s.LastStep() != DirLeft {
		t.Fatalf("expected last step left before advancing, got %v", s.LastStep())
	}

	head, _, _ := s.advance()
	if head != P(5, 4) {
		t.Errorf("expected head (5,4), got %v", head)
	}
	if s.LastStep() != DirUp {
		t.Errorf("expected last step up, got %v", s.LastStep())
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := newSnake(1, P(5, 5), d, 0)

			if got := s.SetDirection(d.Opposite()); got != d {
				t.Errorf("SetDirection(%v) = %v, expected %v retained", d.Opposite(), got, d)
			}
			if s.Direction() != d {
				t.Errorf("direction changed to %v", s.Direction())
			}
		})
	}
}

func TestSnakeDirectionGatedOnLastStep(t *testing.T) {
	s := newSnake(1, P(5, 5), DirRight, 0)

	if got := s.SetDirection(DirUp); got != DirUp {
		t.Fatalf("expected up to be accepted, got %v", got)
	}

	// Left reverses the last applied step even though the pending heading is up
	if got := s.SetDirection(DirLeft); got != DirUp {
		t.Errorf("expected left to be rejected, heading = %v", got)
	}

	if got := s.SetDirection(DirDown); got != DirDown {
		t.Errorf("expected down to be accepted, got %v", got)
	}

	head, _, _ := s.advance()
	if head != P(5, 6) {
		t.Errorf("expected the last accepted heading to apply, head = %v", head)
	}
}

func TestSnakeGrow(t *testing.T) {
	s := newSnake(1, P(0, 0), DirRight, 0)
	s.grow()
	s.grow()

	if s.PendingGrowth() != 2 {
		t.Fatalf("expected pending growth 2, got %d", s.PendingGrowth())
	}

	s.advance()
	s.advance()
	s.advance()
	if s.Size() != 3 {
		t.Errorf("expected size 3 after two units of growth, got %d", s.Size())
	}
}

func TestNewSnakeClampsNegativeGrowth(t *testing.T) {
	s := newSnake(1, P(0, 0), DirRight, -4)
	if s.PendingGrowth() != 0 {
		t.Errorf("expected pending growth 0, got %d", s.PendingGrowth())
	}
	if !s.Alive() || s.Size() != 1 {
		t.Errorf("expected a live one-cell snake, alive=%v size=%d", s.Alive(), s.Size())
	}
}

func TestDirectionDeltaAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
	}{
		{DirUp, 0, -1, DirDown},
		{DirDown, 0, 1, DirUp},
		{DirLeft, -1, 0, DirRight},
		{DirRight, 1, 0, DirLeft},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
		if tc.dir.Opposite() != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, tc.dir.Opposite(), tc.opposite)
		}
	}
}
