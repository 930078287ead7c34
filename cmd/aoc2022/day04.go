package main

import (
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/cleanup"
)

func init() {
	register(4, day4)
}

func day4(r io.Reader, _ Config) (Answer, error) {
	pairs, err := cleanup.ParsePairs(r)
	if err != nil {
		return nil, err
	}
	full, partial := cleanup.Count(pairs)
	return Answer{{"part1", strconv.Itoa(full)}, {"part2", strconv.Itoa(partial)}}, nil
}
