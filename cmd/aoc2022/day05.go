package main

import (
	"io"

	"github.com/ArjenL/AoC2022/supply"
)

func init() {
	register(5, day5)
}

func day5(r io.Reader, _ Config) (Answer, error) {
	stacks, moves, err := supply.Parse(r)
	if err != nil {
		return nil, err
	}
	var ans Answer
	for _, m := range []struct {
		name  string
		model supply.Model
	}{{"part1", supply.CrateMover9000}, {"part2", supply.CrateMover9001}} {
		s := stacks.Clone()
		if err := s.ApplyAll(moves, m.model); err != nil {
			return nil, err
		}
		ans = append(ans, Part{m.name, s.Tops()})
	}
	return ans, nil
}
