package rps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidSymbol is returned for a guide letter outside the expected set.
var ErrInvalidSymbol = errors.New("rps: invalid symbol")

// ErrMalformedRound is returned for a guide line without exactly two columns.
var ErrMalformedRound = errors.New("rps: malformed round")

// Choice is a hand shape.
type Choice uint8

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Goal is the outcome of a round from the player's point of view.
type Goal uint8

const (
	Loss Goal = iota
	Tie
	Win
)

// Mode selects how the second guide column is read.
type Mode uint8

const (
	// ModeChoice reads X, Y, Z as Rock, Paper, Scissors.
	ModeChoice Mode = iota
	// ModeGoal reads X, Y, Z as Loss, Tie, Win.
	ModeGoal
)

// ParseChoice maps A/X, B/Y and C/Z to Rock, Paper and Scissors.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: choice %q", ErrInvalidSymbol, s)
	}
}

// ParseGoal maps X, Y and Z to Loss, Tie and Win.
func ParseGoal(s string) (Goal, error) {
	switch s {
	case "X":
		return Loss, nil
	case "Y":
		return Tie, nil
	case "Z":
		return Win, nil
	default:
		return 0, fmt.Errorf("%w: goal %q", ErrInvalidSymbol, s)
	}
}

// Value is the shape score: 1 for Rock, 2 for Paper, 3 for Scissors.
func (c Choice) Value() int { return int(c) + 1 }

// Beats returns the shape that c defeats.
func (c Choice) Beats() Choice { return (c + 2) % 3 }

// LosesTo returns the shape that defeats c.
func (c Choice) LosesTo() Choice { return (c + 1) % 3 }

// Value is the outcome score: 0 for a loss, 3 for a tie, 6 for a win.
func (g Goal) Value() int { return int(g) * 3 }

// Against returns the player's outcome when playing c against opponent.
func (c Choice) Against(opponent Choice) Goal {
	switch opponent {
	case c:
		return Tie
	case c.Beats():
		return Win
	default:
		return Loss
	}
}

// For returns the shape that reaches g against opponent.
func (g Goal) For(opponent Choice) Choice {
	switch g {
	case Win:
		return opponent.LosesTo()
	case Loss:
		return opponent.Beats()
	default:
		return opponent
	}
}

// Round is one line of the guide with the player's shape resolved.
type Round struct {
	Opponent Choice
	Player   Choice
}

// Score returns the player's score for the round.
func (r Round) Score() int {
	return r.Player.Value() + r.Player.Against(r.Opponent).Value()
}

// ParseStrategy reads the guide, interpreting the second column according to mode.
func ParseStrategy(r io.Reader, mode Mode) ([]Round, error) {
	var rounds []Round
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRound, line, sc.Text())
		}
		opp, err := column(fields[0], "ABC")
		if err != nil {
			return nil, fmt.Errorf("line %d: opponent: %w", line, err)
		}
		round := Round{Opponent: opp}
		switch mode {
		case ModeGoal:
			g, err := ParseGoal(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			round.Player = g.For(opp)
		default:
			if round.Player, err = column(fields[1], "XYZ"); err != nil {
				return nil, fmt.Errorf("line %d: player: %w", line, err)
			}
		}
		rounds = append(rounds, round)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rps: reading guide: %w", err)
	}

	return rounds, nil
}

// column parses a shape restricted to the letters of one guide column.
func column(s, letters string) (Choice, error) {
	if len(s) != 1 || !strings.Contains(letters, s) {
		return 0, fmt.Errorf("%w: %q not in %s", ErrInvalidSymbol, s, letters)
	}
	return ParseChoice(s)
}

// Total sums the scores of all rounds.
func Total(rounds []Round) int {
	sum := 0
	for _, r := range rounds {
		sum += r.Score()
	}
	return sum
}
