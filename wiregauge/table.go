// SPDX-License-Identifier: MIT

package wiregauge

import "fmt"

// Size is one entry of the standard size table.
type Size struct {
	Label    string  `json:"label" msgpack:"label"`       // canonical label, e.g. "4/0 AWG", "250 kcmil"
	Diameter float64 `json:"diameter" msgpack:"diameter"` // inches
}

// standardSizes lists the building-wire sizes in ascending diameter.
// AWG diameters follow the geometric series; kcmil diameters are sqrt(kcmil/1000).
var standardSizes = []Size{
	{"18 AWG", 0.040302651},
	{"16 AWG", 0.050820705},
	{"14 AWG", 0.064083726},
	{"12 AWG", 0.080808086},
	{"10 AWG", 0.101897115},
	{"8 AWG", 0.128489890},
	{"6 AWG", 0.162022760},
	{"4 AWG", 0.204306928},
	{"3 AWG", 0.229422827},
	{"2 AWG", 0.257626279},
	{"1 AWG", 0.289296844},
	{"1/0 AWG", 0.324860740},
	{"2/0 AWG", 0.364796585},
	{"3/0 AWG", 0.409641830},
	{"4/0 AWG", 0.460000000},
	{"250 kcmil", 0.500000000},
	{"300 kcmil", 0.547722558},
	{"350 kcmil", 0.591607978},
	{"400 kcmil", 0.632455532},
	{"500 kcmil", 0.707106781},
	{"600 kcmil", 0.774596669},
	{"700 kcmil", 0.836660027},
	{"750 kcmil", 0.866025404},
	{"800 kcmil", 0.894427191},
	{"900 kcmil", 0.948683298},
	{"1000 kcmil", 1.000000000},
	{"1250 kcmil", 1.118033989},
	{"1500 kcmil", 1.224744871},
	{"1750 kcmil", 1.322875656},
	{"2000 kcmil", 1.414213562},
}

// diameterByLabel indexes standardSizes; built once at init, read-only after.
var diameterByLabel = func() map[string]float64 {
	m := make(map[string]float64, len(standardSizes))
	for _, s := range standardSizes {
		m[s.Label] = s.Diameter
	}
	return m
}()

// Lookup returns the tabulated diameter (inches) of a canonical label.
// The match is exact; use Canonical first to accept other spellings.
func Lookup(label string) (float64, error) {
	d, ok := diameterByLabel[label]
	if !ok {
		return 0, fmt.Errorf("Lookup(%q): %w", label, ErrUnknownSize)
	}

	return d, nil
}

// StandardSizes returns a copy of the standard table in ascending diameter.
func StandardSizes() []Size {
	out := make([]Size, len(standardSizes))
	copy(out, standardSizes)

	return out
}
