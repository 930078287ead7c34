// Package rope simulates a chain of knots dragged across an unbounded
// integer lattice, one unit step of the head at a time.
//
// What
//
//   - Coord is a lattice point; two Coords are taut-adjacent when they differ
//     by at most one unit on each axis (diagonals and overlap included).
//   - Direction is the closed set Up, Down, Left, Right.
//   - ParseMotions reads "<dir> <count>" lines; Expand flattens them into unit steps.
//   - Simulation moves the head for every step, then lets each following knot
//     catch up with the one ahead of it, in chain order, and records every
//     position the last knot occupies.
//
// Follow rule
//
//	A knot that is still taut-adjacent to its leader stays put. Otherwise it
//	moves one unit along each axis on which it differs from the leader, so a
//	knot never moves more than one cell (orthogonally or diagonally) per step.
//	Knot i always reacts to the already-updated position of knot i-1.
//
// Options
//
//   - DefaultOptions(): one trailing knot, no step hook.
//   - WithTailKnots(n):  number of knots behind the head (n ≥ 1).
//   - WithOnStep(fn):    hook called after every step with the rope's knots.
//
// Errors
//
//   - ErrUnrecognizedDirection for a token outside U/D/L/R.
//   - ErrBadCount for a repeat count that is not a non-negative integer.
//   - ErrBadMotion for a line that is not "<dir> <count>".
//   - ErrOptionViolation for an invalid Option.
//
// Complexity: O(S×N) time for S steps and N knots; O(V) memory for V visited cells.
package rope
