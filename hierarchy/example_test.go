package hierarchy_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/estkit/hierarchy"
)

// ExampleTree_Walk prints an indented labor-hour rollup.
func ExampleTree_Walk() {
	tree := hierarchy.NewTree[string]()
	for code, hours := range map[string]float64{
		"Electrical > Power > Feeders": 36,
		"Electrical > Power > Branch":  52,
		"Electrical > Lighting":        24,
	} {
		p, _ := hierarchy.ParsePath(code, ">")
		_ = tree.Add(p, hours)
	}

	_, _ = tree.Walk(hierarchy.WithOnVisit(func(e hierarchy.Entry[string]) error {
		fmt.Printf("%s%s: %.0f h\n", strings.Repeat("  ", e.Depth()), e.Path.Last(), e.Total)
		return nil
	}))
	// Output:
	// Electrical: 112 h
	//   Lighting: 24 h
	//   Power: 88 h
	//     Branch: 52 h
	//     Feeders: 36 h
}
