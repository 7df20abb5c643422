package rebar_test

import (
	"fmt"

	"github.com/katalvlaran/estkit/rebar"
)

// ExampleBar_Weight weighs a 40 ft stick of #5.
func ExampleBar_Weight() {
	b, err := rebar.FromBarSize("5")
	if err != nil {
		fmt.Println(err)
		return
	}
	w, _ := b.Weight(40)
	fmt.Printf("%s: %.3f in, %.3f lb/ft, %.1f lb\n", b.Size(), b.NominalDiameter(), b.LinearMassDensity(), w)
	// Output:
	// #5: 0.625 in, 1.044 lb/ft, 41.8 lb
}
