package main

import (
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/rope"
)

func init() {
	register(9, day9)
}

func day9(r io.Reader, cfg Config) (Answer, error) {
	motions, err := rope.ParseMotions(r)
	if err != nil {
		return nil, err
	}
	steps := rope.Expand(motions)
	log.WithField("steps", len(steps)).Debug("motions expanded")

	var ans Answer
	for _, n := range cfg.RopeKnots {
		sim, err := rope.NewSimulation(steps, rope.WithTailKnots(n))
		if err != nil {
			return nil, err
		}
		ans = append(ans, Part{strconv.Itoa(n+1) + " knots", strconv.Itoa(sim.Run())})
	}
	return ans, nil
}
