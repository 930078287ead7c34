// Package cleanup compares pairs of section assignments.
package cleanup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadAssignment is returned for a line that is not "a-b,c-d" with a ≤ b and c ≤ d.
var ErrBadAssignment = errors.New("cleanup: malformed assignment")

// Assignment is an inclusive range of section IDs.
type Assignment struct {
	Lo, Hi int
}

// Contains reports whether a covers every section of o.
func (a Assignment) Contains(o Assignment) bool {
	return a.Lo <= o.Lo && a.Hi >= o.Hi
}

// Pair is the two assignments of one line.
type Pair struct {
	A, B Assignment
}

// FullyContains reports whether one assignment covers the other.
func (p Pair) FullyContains() bool {
	return p.A.Contains(p.B) || p.B.Contains(p.A)
}

// Overlaps reports whether the assignments share at least one section.
func (p Pair) Overlaps() bool {
	return p.A.Hi >= p.B.Lo && p.A.Lo <= p.B.Hi
}

// ParsePairs reads one "a-b,c-d" pair per line. Blank lines are skipped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parsePair(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cleanup: reading input: %w", err)
	}

	return pairs, nil
}

func parsePair(text string) (Pair, error) {
	left, right, ok := strings.Cut(text, ",")
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadAssignment, text)
	}
	a, err := parseAssignment(left)
	if err != nil {
		return Pair{}, err
	}
	b, err := parseAssignment(right)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: a, B: b}, nil
}

func parseAssignment(s string) (Assignment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Assignment{}, fmt.Errorf("%w: %q", ErrBadAssignment, s)
	}
	a, errLo := strconv.Atoi(lo)
	b, errHi := strconv.Atoi(hi)
	if errLo != nil || errHi != nil || a < 0 || a > b {
		return Assignment{}, fmt.Errorf("%w: %q", ErrBadAssignment, s)
	}
	return Assignment{Lo: a, Hi: b}, nil
}

// Count returns how many pairs fully contain one another and how many overlap.
func Count(pairs []Pair) (full, partial int) {
	for _, p := range pairs {
		if p.FullyContains() {
			full++
		}
		if p.Overlaps() {
			partial++
		}
	}
	return full, partial
}
