package evidence_test

import (
	"fmt"

	"github.com/katalvlaran/estkit/evidence"
)

// ExampleMass_Combine fuses two estimators' views of a crew's productivity
// band.
func ExampleMass_Combine() {
	type f = evidence.Focal[string]
	first, _ := evidence.New(f{Set: []string{"high"}, Mass: 0.6}, f{Set: []string{"high", "low"}, Mass: 0.4})
	second, _ := evidence.New(f{Set: []string{"low"}, Mass: 0.5}, f{Set: []string{"high", "low"}, Mass: 0.5})

	both, err := first.Combine(second)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range both.Focals() {
		fmt.Printf("%v %.3f\n", x.Set, x.Mass)
	}
	// Output:
	// [high] 0.429
	// [low] 0.286
	// [high low] 0.286
}
