// Package supply rearranges crate stacks with a giant cargo crane.
//
// The input is a drawing of the stacks, a blank line, then one
// "move n from a to b" instruction per line with 1-based stack numbers.
// The CrateMover 9000 lifts one crate at a time, reversing the order of a
// multi-crate move; the CrateMover 9001 lifts them all at once and keeps it.
package supply
