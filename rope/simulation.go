package rope

// Simulation drags a rope along a fixed sequence of unit steps.
// It owns its knots and visited set; nothing is shared between Simulations.
type Simulation struct {
	steps   []Direction
	knots   []Coord // knots[0] is the head
	visited map[Coord]struct{}
	opts    Options
}

// NewSimulation prepares a rope of 1+TailKnots knots at the origin for the
// given steps. The steps slice is copied. Returns ErrOptionViolation when an
// Option is invalid.
func NewSimulation(steps []Direction, opts ...Option) (*Simulation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s := &Simulation{
		steps: append([]Direction(nil), steps...),
		knots: make([]Coord, o.TailKnots+1),
		opts:  o,
	}
	s.reset()

	return s, nil
}

// reset puts every knot back on the origin and clears the visited set.
// The origin counts as visited by the last knot.
func (s *Simulation) reset() {
	for i := range s.knots {
		s.knots[i] = Origin
	}
	s.visited = map[Coord]struct{}{Origin: {}}
}

// Run applies every step in order and returns the number of distinct cells
// the last knot visited. Calling Run again starts over from the origin and
// yields the same result.
func (s *Simulation) Run() int {
	s.reset()
	last := len(s.knots) - 1
	for i, d := range s.steps {
		s.knots[0] = s.knots[0].Step(d)
		for k := 1; k <= last; k++ {
			next := s.knots[k].Follow(s.knots[k-1])
			if next == s.knots[k] {
				break // knots further back cannot move either
			}
			s.knots[k] = next
		}
		s.visited[s.knots[last]] = struct{}{}
		s.opts.OnStep(i, s.knots)
	}

	return len(s.visited)
}

// VisitedCount returns the number of distinct cells visited by the last knot.
func (s *Simulation) VisitedCount() int {
	return len(s.visited)
}

// Visited returns the cells visited by the last knot, in no particular order.
func (s *Simulation) Visited() []Coord {
	out := make([]Coord, 0, len(s.visited))
	for c := range s.visited {
		out = append(out, c)
	}
	return out
}

// Knots returns a copy of the current knot positions, head first.
func (s *Simulation) Knots() []Coord {
	return append([]Coord(nil), s.knots...)
}

// Len returns the number of unit steps the simulation will apply.
func (s *Simulation) Len() int {
	return len(s.steps)
}
