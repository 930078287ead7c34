package rope_test

import (
	"fmt"
	"strings"

	"github.com/ArjenL/AoC2022/rope"
)

// ExampleSimulation_Run counts the cells visited by the tail of a short
// and a ten-knot rope following the same head motions.
func ExampleSimulation_Run() {
	motions, _ := rope.ParseMotions(strings.NewReader("R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"))
	st := rope.Expand(motions)

	short, _ := rope.NewSimulation(st)
	long, _ := rope.NewSimulation(st, rope.WithTailKnots(9))
	fmt.Println("2 knots:", short.Run())
	fmt.Println("10 knots:", long.Run())

	// Output:
	// 2 knots: 13
	// 10 knots: 1
}

// ExampleRender shows the rope after the first motion of the sample.
func ExampleRender() {
	sim, _ := rope.NewSimulation([]rope.Direction{rope.Right, rope.Right, rope.Right, rope.Right})
	sim.Run()
	fmt.Print(rope.Render(sim.Knots(), 0, 0, 5, 1))

	// Output:
	// ......
	// s..1H.
}
