package rope

import "golang.org/x/exp/constraints"

// Coord is a point on the unbounded lattice. Up is +Y and Right is +X.
type Coord struct {
	X, Y int
}

// Origin is where every knot starts.
var Origin = Coord{}

// abs returns |v|.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1, 0 or 1 according to the sign of v.
func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Step returns c moved one unit in direction d.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case Up:
		c.Y++
	case Down:
		c.Y--
	case Left:
		c.X--
	case Right:
		c.X++
	}
	return c
}

// Adjacent reports whether c and o are taut-adjacent: at most one unit
// apart on both axes.
func (c Coord) Adjacent(o Coord) bool {
	return abs(o.X-c.X) <= 1 && abs(o.Y-c.Y) <= 1
}

// Follow returns where c ends up after catching up with leader.
// It stays put while taut-adjacent, otherwise it moves one unit toward
// leader on each axis where they differ.
func (c Coord) Follow(leader Coord) Coord {
	if c.Adjacent(leader) {
		return c
	}
	return Coord{
		X: c.X + sign(leader.X-c.X),
		Y: c.Y + sign(leader.Y-c.Y),
	}
}
