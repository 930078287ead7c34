package supply

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrBadDrawing is returned when the stack drawing cannot be read.
	ErrBadDrawing = errors.New("supply: malformed drawing")
	// ErrBadMove is returned for an instruction that is not "move n from a to b".
	ErrBadMove = errors.New("supply: malformed move")
	// ErrNoSuchStack is returned for a move naming a stack that does not exist.
	ErrNoSuchStack = errors.New("supply: no such stack")
	// ErrEmptyStack is returned when a move takes more crates than a stack holds.
	ErrEmptyStack = errors.New("supply: not enough crates")
)

// Model selects the crane's lifting behaviour.
type Model int

const (
	CrateMover9000 Model = iota
	CrateMover9001
)

// Move is one crane instruction with 0-based stack indices.
type Move struct {
	N, From, To int
}

// Stacks holds crates bottom first.
type Stacks [][]byte

// Clone returns a deep copy of s.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append([]byte(nil), st...)
	}
	return out
}

// Apply performs m on s using the given crane model.
func (s Stacks) Apply(m Move, model Model) error {
	if m.From < 0 || m.From >= len(s) || m.To < 0 || m.To >= len(s) {
		return fmt.Errorf("%w: move %d from %d to %d", ErrNoSuchStack, m.N, m.From+1, m.To+1)
	}
	from := s[m.From]
	if m.N > len(from) {
		return fmt.Errorf("%w: stack %d holds %d, move wants %d", ErrEmptyStack, m.From+1, len(from), m.N)
	}
	cut := len(from) - m.N
	lifted := append([]byte(nil), from[cut:]...)
	s[m.From] = from[:cut]
	if model == CrateMover9000 {
		for i, j := 0, len(lifted)-1; i < j; i, j = i+1, j-1 {
			lifted[i], lifted[j] = lifted[j], lifted[i]
		}
	}
	s[m.To] = append(s[m.To], lifted...)
	return nil
}

// ApplyAll performs every move in order, stopping at the first error.
func (s Stacks) ApplyAll(moves []Move, model Model) error {
	for i, m := range moves {
		if err := s.Apply(m, model); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// Tops returns the top crate of every stack; empty stacks contribute nothing.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			b.WriteByte(st[len(st)-1])
		}
	}
	return b.String()
}

// Parse reads the drawing and the instructions.
func Parse(r io.Reader) (Stacks, []Move, error) {
	var (
		drawing []string
		moves   []Move
		inMoves bool
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if !inMoves {
			if strings.TrimSpace(text) == "" {
				inMoves = len(drawing) > 0
				continue
			}
			drawing = append(drawing, text)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := ParseMove(text)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		moves = append(moves, m)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("supply: reading input: %w", err)
	}
	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, nil, err
	}

	return stacks, moves, nil
}

// parseDrawing reads crate letters at columns 1, 5, 9, ... from the bottom
// layer up. The last line must number the stacks 1..n.
func parseDrawing(lines []string) (Stacks, error) {
	if len(lines) < 1 {
		return nil, fmt.Errorf("%w: empty", ErrBadDrawing)
	}
	labels := strings.Fields(lines[len(lines)-1])
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, fmt.Errorf("%w: stack label %q at position %d", ErrBadDrawing, l, i+1)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no stack labels", ErrBadDrawing)
	}
	stacks := make(Stacks, len(labels))
	for layer := len(lines) - 2; layer >= 0; layer-- {
		row := lines[layer]
		for s := range stacks {
			col := s*4 + 1
			if col >= len(row) || row[col] == ' ' {
				continue
			}
			if row[col-1] != '[' || col+1 >= len(row) || row[col+1] != ']' {
				return nil, fmt.Errorf("%w: layer %d stack %d", ErrBadDrawing, layer+1, s+1)
			}
			stacks[s] = append(stacks[s], row[col])
		}
	}

	return stacks, nil
}

// ParseMove parses "move n from a to b" into a Move with 0-based stacks.
func ParseMove(text string) (Move, error) {
	f := strings.Fields(text)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, text)
	}
	var nums [3]int
	for i, s := range []string{f[1], f[3], f[5]} {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Move{}, fmt.Errorf("%w: %q", ErrBadMove, text)
		}
		nums[i] = v
	}
	return Move{N: nums[0], From: nums[1] - 1, To: nums[2] - 1}, nil
}
