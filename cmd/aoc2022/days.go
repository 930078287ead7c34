package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Part is one named answer of a puzzle.
type Part struct {
	Name  string
	Value string
}

// Answer is everything a solver prints.
type Answer []Part

func (a Answer) String() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = p.Name + ": " + p.Value
	}
	return strings.Join(parts, ", ")
}

type solver func(r io.Reader, cfg Config) (Answer, error)

var solvers = map[int]solver{}

// register adds the solver for a day. Registering a day twice panics.
func register(day int, fn solver) {
	if _, dup := solvers[day]; dup {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	solvers[day] = fn
}

// availableDays lists the registered days in ascending order.
func availableDays() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// lookup resolves a -day flag value; empty means the latest day.
func lookup(flagDay string) (int, solver, error) {
	days := availableDays()
	if flagDay == "" {
		d := days[len(days)-1]
		return d, solvers[d], nil
	}
	d, err := strconv.Atoi(strings.TrimPrefix(flagDay, "day"))
	if err == nil {
		if fn, ok := solvers[d]; ok {
			return d, fn, nil
		}
	}
	return 0, nil, fmt.Errorf("no solver for day %q (available: %v)", flagDay, days)
}
