package main

import (
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/calories"
)

func init() {
	register(1, day1)
}

func day1(r io.Reader, cfg Config) (Answer, error) {
	totals, err := calories.Parse(r)
	if err != nil {
		return nil, err
	}
	top, err := calories.TopN(totals, 1)
	if err != nil {
		return nil, err
	}
	topN, err := calories.TopN(totals, cfg.TopElves)
	if err != nil {
		return nil, err
	}
	return Answer{
		{"top elf", strconv.Itoa(top)},
		{"top " + strconv.Itoa(cfg.TopElves) + " elves", strconv.Itoa(topN)},
	}, nil
}
