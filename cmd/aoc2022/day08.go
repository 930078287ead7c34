package main

import (
	"io"
	"strconv"

	"github.com/ArjenL/AoC2022/treegrid"
)

func init() {
	register(8, day8)
}

func day8(r io.Reader, _ Config) (Answer, error) {
	g, err := treegrid.Parse(r)
	if err != nil {
		return nil, err
	}
	log.WithField("size", strconv.Itoa(g.Rows)+"x"+strconv.Itoa(g.Cols)).Debug("grid parsed")
	return Answer{
		{"visible", strconv.Itoa(g.Visible().Len())},
		{"scenic", strconv.Itoa(g.MaxScenicScore())},
	}, nil
}
