package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Place demonstrates role-move semantics and endpoint
// protection.
func ExampleGrid_Place() {
	g, _ := grid.New(4)

	_ = g.Place(0, 0, grid.RoleStart)
	_ = g.Place(3, 3, grid.RoleEnd)

	// Moving the start leaves the old cell empty.
	_ = g.Place(1, 1, grid.RoleStart)
	old, _ := g.At(0, 0)
	fmt.Println("old start cell:", old.State())

	// A barrier cannot claim an endpoint in place.
	err := g.Place(3, 3, grid.RoleBarrier)
	fmt.Println("barrier over end:", err)
	// Output:
	// old start cell: empty
	// barrier over end: grid: cell must be cleared before it can take this role
}

// ExampleGrid_Neighbors shows the fixed adjacency order around a cell,
// with barriers excluded.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3)
	_ = g.Place(1, 2, grid.RoleBarrier)

	center, _ := g.At(1, 1)
	for _, n := range g.Neighbors(center) {
		fmt.Printf("(%d,%d)\n", n.Row(), n.Column())
	}
	// Output:
	// (0,1)
	// (2,1)
	// (1,0)
}
