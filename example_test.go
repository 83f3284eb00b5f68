package astar_test

import (
	"context"
	"fmt"

	astar "github.com/pdrpinto/astarstep"
	"github.com/pdrpinto/astarstep/grid"
)

// Drive the engine one expansion per frame.
func ExampleEngine() {
	g := grid.New(3, 3)

	engine := astar.New[int]()
	engine.Configure(g)
	if err := engine.Startup(0, 8); err != nil {
		panic(err)
	}

	for frame := 1; ; frame++ {
		step, err := engine.Calculate()
		if err != nil {
			panic(err)
		}
		switch step.Outcome {
		case astar.Exhausted:
			fmt.Println("no path")
			return
		case astar.Arrived:
			path, _ := engine.Routing(step.Arrival)
			fmt.Println("frames:", frame)
			fmt.Println("path:", path)
			fmt.Println("cost:", step.Arrival.Cost())
			return
		}
	}

	// Output:
	// frames: 9
	// path: [3 6 7 8]
	// cost: 4
}

func ExampleFindPath() {
	m, err := grid.ParseString(`
S.#G
#.#.
#...
`)
	if err != nil {
		panic(err)
	}
	g := m.Grid

	path, err := astar.FindPath[int](context.Background(), g, g.ID(m.Start), g.ID(m.Goal))
	if err != nil {
		panic(err)
	}
	for _, id := range path {
		fmt.Print(g.Point(id), " ")
	}
	fmt.Println()

	// Output:
	// 1,0 1,1 1,2 2,2 3,2 3,1 3,0
}
