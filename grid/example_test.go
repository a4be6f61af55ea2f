package grid_test

import (
	"fmt"

	"github.com/katalvlaran/ndstruct/grid"
	"github.com/katalvlaran/ndstruct/structure"
)

// ExampleGrid_Transpose materializes a transposed view.
func ExampleGrid_Transpose() {
	e, _ := structure.NewExtent(2, 3)
	g := grid.New[int](e)
	_ = g.Apply(func(c []int, _ int) int { return c[0]*3 + c[1] + 1 })

	t, _ := g.Transpose()
	m, _ := t.Materialize()
	fmt.Print(m)

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
