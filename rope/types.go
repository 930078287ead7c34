package rope

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and configuration.
var (
	// ErrUnrecognizedDirection is returned for a direction token outside U/D/L/R.
	ErrUnrecognizedDirection = errors.New("rope: unrecognized direction")

	// ErrBadCount is returned when a motion count is not a non-negative integer.
	ErrBadCount = errors.New("rope: motion count must be a non-negative integer")

	// ErrBadMotion is returned when a line does not have exactly two fields.
	ErrBadMotion = errors.New("rope: malformed motion")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rope: invalid option supplied")
)

// Direction is one unit move of the head.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection maps the puzzle letters U, D, L and R to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDirection, s)
	}
}

// String returns the puzzle letter for d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Motion is a direction repeated Count times.
type Motion struct {
	Dir   Direction
	Count int
}

// Option configures a Simulation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewSimulation.
type Option func(*Options)

// Options holds the tunable parameters of a Simulation.
type Options struct {
	// TailKnots is the number of knots behind the head.
	TailKnots int

	// OnStep is called after every unit step with the step index (0-based)
	// and the knots, head first. The slice must not be retained.
	OnStep func(step int, knots []Coord)

	err error
}

// DefaultOptions returns Options with a single trailing knot and a no-op hook.
func DefaultOptions() Options {
	return Options{
		TailKnots: 1,
		OnStep:    func(int, []Coord) {},
	}
}

// WithTailKnots sets the number of knots following the head.
//
//	n ≥ 1: use n knots
//	n < 1: invalid option → ErrOptionViolation
func WithTailKnots(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: TailKnots must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.TailKnots = n
	}
}

// WithOnStep registers a hook run after every step.
func WithOnStep(fn func(step int, knots []Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
