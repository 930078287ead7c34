// Package aoc2022 collects solutions to the Advent of Code 2022 puzzles.
//
// Every puzzle is a self-contained package with its own parser, sentinel
// errors and tests; none depends on another:
//
//	calories/ — day 1: per-elf calorie totals, top-N via a max-heap
//	rps/      — day 2: Rock Paper Scissors strategy scoring
//	rucksack/ — day 3: compartment and badge item priorities
//	cleanup/  — day 4: fully contained and overlapping section ranges
//	supply/   — day 5: crate stacks under two crane models
//	tuning/   — day 6: first window of distinct characters
//	treegrid/ — day 8: tree visibility and scenic scores on a height grid
//	rope/     — day 9: knot chain simulation and tail coverage
//
// The aoc2022 command in cmd/aoc2022 reads a puzzle input on stdin and
// prints the answers for the selected day:
//
//	go run ./cmd/aoc2022 -day 9 < input.txt
package aoc2022
