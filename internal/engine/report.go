package engine

// Outcome records what happened to one snake during a tick.
type Outcome struct {
	SnakeID int
	Head    Position  // Cell the snake moved into
	State   CellState // Classification of Head before the move was applied
	Won     bool      // The snake ate and no empty cell was left for new food
}

// Report is the result of one Step, one outcome per snake processed,
// in processing order.
type Report struct {
	Tick     uint64
	Outcomes []Outcome
}

// Last returns the classification of the last snake processed, or
// CellOutside if no snake moved this tick.
func (r Report) Last() CellState {
	if len(r.Outcomes) == 0 {
		return CellOutside
	}
	return r.Outcomes[len(r.Outcomes)-1].State
}

// For returns the outcome of the given snake, if it moved this tick.
func (r Report) For(id int) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.SnakeID == id {
			return o, true
		}
	}
	return Outcome{}, false
}

// Count returns how many snakes ended up on a cell of the given state.
func (r Report) Count(state CellState) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == state {
			n++
		}
	}
	return n
}

// Killed returns the IDs of snakes that died this tick.
func (r Report) Killed() []int {
	var ids []int
	for _, o := range r.Outcomes {
		if o.State == CellOutside || o.State == CellSnake {
			ids = append(ids, o.SnakeID)
		}
	}
	return ids
}
