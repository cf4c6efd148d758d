package engine

// Snake is one snake's body and heading state.
//
// The body is ordered tail first, head last. direction is the heading wanted
// by input; lastStep is the heading applied on the most recent advance and is
// what reversal checks are made against.
type Snake struct {
	id            int
	body          []Position
	head          Position
	direction     Direction
	lastStep      Direction
	pendingGrowth int
	alive         bool
}

func newSnake(id int, head Position, dir Direction, growth int) *Snake {
	return &Snake{
		id:            id,
		body:          []Position{head},
		head:          head,
		direction:     dir,
		lastStep:      dir,
		pendingGrowth: max(growth, 0),
		alive:         true,
	}
}

// ID returns the engine-assigned identifier.
func (s *Snake) ID() int {
	return s.id
}

// Head returns the head position. For a dead snake it is the cell it
// died moving into.
func (s *Snake) Head() Position {
	return s.head
}

// Body returns a copy of the occupied cells, tail first.
func (s *Snake) Body() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}

// Size returns the body length.
func (s *Snake) Size() int {
	return len(s.body)
}

// Direction returns the heading that the next advance will use.
func (s *Snake) Direction() Direction {
	return s.direction
}

// LastStep returns the heading applied on the most recent advance.
func (s *Snake) LastStep() Direction {
	return s.lastStep
}

// PendingGrowth returns the number of future advances that keep the tail.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Alive reports whether the snake still takes part in the simulation.
func (s *Snake) Alive() bool {
	return s.alive
}

// SetDirection changes the heading unless dir reverses the last applied step.
// It returns the heading in effect after the call.
func (s *Snake) SetDirection(dir Direction) Direction {
	if dir != s.lastStep.Opposite() {
		s.direction = dir
	}
	return s.direction
}

// grow adds one unit of growth debt.
func (s *Snake) grow() {
	s.pendingGrowth++
}

// advance moves the head one cell along direction. Unless growth is owed,
// the tail cell is popped and returned with freedOK set.
func (s *Snake) advance() (head, freed Position, freedOK bool) {
	head = s.head.Step(s.direction)
	s.head = head
	s.lastStep = s.direction

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		freed, freedOK = s.body[0], true
		s.body = s.body[1:]
	}

	s.body = append(s.body, head)
	return head, freed, freedOK
}

// retractHead drops the head appended by the last advance.
func (s *Snake) retractHead() {
	s.body = s.body[:len(s.body)-1]
}
