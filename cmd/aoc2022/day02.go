package main

import (
	"bytes"
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/rps"
)

func init() {
	register(2, day2)
}

func day2(r io.Reader, _ Config) (Answer, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var ans Answer
	for _, m := range []struct {
		name string
		mode rps.Mode
	}{{"part1", rps.ModeChoice}, {"part2", rps.ModeGoal}} {
		rounds, err := rps.ParseStrategy(bytes.NewReader(input), m.mode)
		if err != nil {
			return nil, err
		}
		ans = append(ans, Part{m.name, strconv.Itoa(rps.Total(rounds))})
	}
	return ans, nil
}
