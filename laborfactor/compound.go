// SPDX-License-Identifier: MIT

package laborfactor

import "strings"

// Compound is the product of several factors.
type Compound struct {
	Factors    []Factor `json:"factors" msgpack:"factors"`
	Multiplier float64  `json:"multiplier" msgpack:"multiplier"`
	Warnings   []string `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

// Combine multiplies the factors and collects their non-empty warnings in
// order. Combine() with no factors is the identity (multiplier 1).
func Combine(factors ...Factor) Compound {
	c := Compound{Factors: append([]Factor(nil), factors...), Multiplier: 1}
	for _, f := range factors {
		c.Multiplier *= f.Multiplier
		if w := strings.TrimSpace(f.Warning); w != "" {
			c.Warnings = append(c.Warnings, w)
		}
	}

	return c
}

// Merge flattens compounds into one over all their factors.
func Merge(compounds ...Compound) Compound {
	var all []Factor
	for _, c := range compounds {
		all = append(all, c.Factors...)
	}

	return Combine(all...)
}

// HasWarnings reports whether any factor raised a warning.
func (c Compound) HasWarnings() bool { return len(c.Warnings) > 0 }

// Warning joins the warnings with "; ".
func (c Compound) Warning() string { return strings.Join(c.Warnings, "; ") }

// Apply scales a base labor quantity (hours, units) by the multiplier.
func (c Compound) Apply(base float64) float64 { return base * c.Multiplier }
