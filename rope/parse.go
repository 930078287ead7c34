package rope

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMotions reads one "<dir> <count>" motion per line. Blank lines are
// skipped. The first malformed line aborts parsing with its line number.
func ParseMotions(r io.Reader) ([]Motion, error) {
	var motions []Motion
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m, err := parseMotion(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		motions = append(motions, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rope: reading motions: %w", err)
	}

	return motions, nil
}

func parseMotion(text string) (Motion, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Motion{}, fmt.Errorf("%w: %q", ErrBadMotion, text)
	}
	dir, err := ParseDirection(fields[0])
	if err != nil {
		return Motion{}, err
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return Motion{}, fmt.Errorf("%w: %q", ErrBadCount, fields[1])
	}

	return Motion{Dir: dir, Count: n}, nil
}

// Expand flattens motions into a sequence of unit steps.
func Expand(motions []Motion) []Direction {
	total := 0
	for _, m := range motions {
		total += m.Count
	}
	steps := make([]Direction, 0, total)
	for _, m := range motions {
		for i := 0; i < m.Count; i++ {
			steps = append(steps, m.Dir)
		}
	}

	return steps
}
