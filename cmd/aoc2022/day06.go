package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/ArjenL/AoC2022/tuning"
)

func init() {
	register(6, day6)
}

func day6(r io.Reader, cfg Config) (Answer, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	signal := strings.TrimSpace(string(input))
	var ans Answer
	for _, w := range cfg.MarkerWindows {
		pos, err := tuning.Detect(signal, w)
		if err != nil {
			return nil, err
		}
		ans = append(ans, Part{"window " + strconv.Itoa(w), strconv.Itoa(pos)})
	}
	return ans, nil
}
