// Package rps scores a Rock Paper Scissors strategy guide.
//
// Each guide line holds the opponent's shape (A, B, C) and a second column
// (X, Y, Z). Under ModeChoice the second column is the player's shape; under
// ModeGoal it is the desired outcome (lose, draw, win) and the player's shape
// is derived from it. A round scores the shape value (1, 2, 3) plus the
// outcome value (0, 3, 6).
package rps
