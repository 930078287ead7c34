package main

import (
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/rucksack"
)

func init() {
	register(3, day3)
}

func day3(r io.Reader, _ Config) (Answer, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	shared, err := rucksack.SumShared(lines)
	if err != nil {
		return nil, err
	}
	badges, err := rucksack.SumBadges(lines)
	if err != nil {
		return nil, err
	}
	return Answer{{"part1", strconv.Itoa(shared)}, {"part2", strconv.Itoa(badges)}}, nil
}
