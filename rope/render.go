package rope

import (
	"strconv"
	"strings"
)

// Render draws knots inside the window [minX,maxX]×[minY,maxY], top row first.
// The head is drawn as "H", other knots by their index, and an uncovered
// origin as "s". Earlier knots hide later ones on the same cell. Knots with
// index ≥ 10 are drawn as "#".
func Render(knots []Coord, minX, minY, maxX, maxY int) string {
	var b strings.Builder
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			b.WriteString(glyph(knots, Coord{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(knots []Coord, at Coord) string {
	for i, k := range knots {
		if k != at {
			continue
		}
		switch {
		case i == 0:
			return "H"
		case i < 10:
			return strconv.Itoa(i)
		default:
			return "#"
		}
	}
	if at == Origin {
		return "s"
	}
	return "."
}
