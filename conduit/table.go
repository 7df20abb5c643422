// SPDX-License-Identifier: MIT

package conduit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/estkit/shape"
)

// Dimensions is one row of the conduit table. Diameters are in inches,
// LinearMassDensity in lb/ft.
type Dimensions struct {
	Type              string  `json:"type" msgpack:"type"`
	Designator        int     `json:"designator" msgpack:"designator"`
	InnerDiameter     float64 `json:"inner_diameter" msgpack:"inner_diameter"`
	OuterDiameter     float64 `json:"outer_diameter" msgpack:"outer_diameter"`
	OuterKnown        bool    `json:"outer_known" msgpack:"outer_known"`
	LinearMassDensity float64 `json:"linear_mass_density" msgpack:"linear_mass_density"`
}

// row is {inner diameter, outer diameter, lb/ft}; outer 0 means unpublished.
type row [3]float64

var dimensions = map[string]map[int]row{
	EMT: {
		16: {0.622, 0.706, 0.300}, 21: {0.824, 0.922, 0.460}, 27: {1.049, 1.163, 0.670},
		35: {1.380, 1.510, 1.010}, 41: {1.610, 1.740, 1.160}, 53: {2.067, 2.197, 1.480},
		63: {2.731, 2.875, 2.160}, 78: {3.356, 3.500, 2.630}, 91: {3.834, 4.000, 3.490},
		103: {4.334, 4.500, 3.930},
	},
	IMC: {
		16: {0.660, 0.815, 0.620}, 21: {0.864, 1.029, 0.840}, 27: {1.105, 1.290, 1.190},
		35: {1.448, 1.638, 1.580}, 41: {1.683, 1.883, 1.940}, 53: {2.150, 2.360, 2.560},
		63: {2.557, 2.857, 4.410}, 78: {3.176, 3.476, 5.430}, 91: {3.671, 3.971, 6.290},
		103: {4.166, 4.466, 7.000},
	},
	RMC: {
		16: {0.632, 0.840, 0.820}, 21: {0.836, 1.050, 1.090}, 27: {1.063, 1.315, 1.610},
		35: {1.394, 1.660, 2.180}, 41: {1.624, 1.900, 2.630}, 53: {2.083, 2.375, 3.500},
		63: {2.489, 2.875, 5.590}, 78: {3.090, 3.500, 7.270}, 91: {3.570, 4.000, 8.800},
		103: {4.050, 4.500, 10.300}, 129: {5.073, 5.563, 14.000}, 155: {6.093, 6.625, 18.400},
	},
	RMCPVC: {
		16: {0.632, 0, 0.850}, 21: {0.836, 0, 1.120}, 27: {1.063, 0, 1.640},
		35: {1.394, 0, 2.170}, 41: {1.624, 0, 2.680}, 53: {2.083, 0, 3.580},
		63: {2.489, 0, 5.460}, 78: {3.090, 0, 7.080}, 91: {3.570, 0, 8.510},
		103: {4.050, 0, 10.090}, 129: {5.073, 0, 13.370}, 155: {6.093, 6.705, 19.930},
	},
	PVC40: {
		16: {0.602, 0.840, 0.180}, 21: {0.804, 1.050, 0.240}, 27: {1.029, 1.315, 0.330},
		35: {1.360, 1.660, 0.450}, 41: {1.590, 1.900, 0.560}, 53: {2.047, 2.375, 0.760},
		63: {2.445, 2.875, 1.260}, 78: {3.042, 3.500, 1.630}, 91: {3.521, 4.000, 1.970},
		103: {3.998, 4.500, 2.340}, 129: {5.016, 5.563, 3.190}, 155: {6.031, 6.625, 4.110},
	},
	PVC80: {
		16: {0.526, 0.840, 0.220}, 21: {0.722, 1.050, 0.300}, 27: {0.936, 1.315, 0.420},
		35: {1.255, 1.660, 0.600}, 41: {1.476, 1.900, 0.720}, 53: {1.913, 2.375, 0.980},
		63: {2.290, 2.875, 1.600}, 78: {2.864, 3.500, 2.130}, 91: {3.326, 4.000, 2.560},
		103: {3.786, 4.500, 3.100}, 129: {4.768, 5.563, 4.300}, 155: {5.709, 6.625, 5.900},
	},
}

// Lookup returns the dimensions of a conduit given its trade size
// ("3/4", "1-1/2") and type alias ("EMT", "GRC").
func Lookup(tradeSize, conduitType string) (Dimensions, error) {
	designator, err := ParseTradeSize(tradeSize)
	if err != nil {
		return Dimensions{}, fmt.Errorf("Lookup: %w", err)
	}
	t, err := CanonicalType(conduitType)
	if err != nil {
		return Dimensions{}, fmt.Errorf("Lookup: %w", err)
	}

	return LookupDesignator(t, designator)
}

// LookupDesignator is Lookup keyed by canonical type and metric designator.
func LookupDesignator(conduitType string, designator int) (Dimensions, error) {
	t, err := CanonicalType(conduitType)
	if err != nil {
		return Dimensions{}, fmt.Errorf("LookupDesignator: %w", err)
	}
	r, ok := dimensions[t][designator]
	if !ok {
		return Dimensions{}, fmt.Errorf("LookupDesignator(%s, %d): %w", t, designator, ErrUnknownSize)
	}

	return Dimensions{
		Type:              t,
		Designator:        designator,
		InnerDiameter:     r[0],
		OuterDiameter:     r[1],
		OuterKnown:        r[1] > 0,
		LinearMassDensity: r[2],
	}, nil
}

// Tube builds a shape.Tube for the conduit, with its published weight.
func Tube(tradeSize, conduitType string) (shape.Tube, error) {
	d, err := Lookup(tradeSize, conduitType)
	if err != nil {
		return shape.Tube{}, fmt.Errorf("Tube: %w", err)
	}

	return d.Tube()
}

// Tube builds a shape.Tube from the row. Rows without a published outer
// diameter return ErrIncompleteData.
func (d Dimensions) Tube() (shape.Tube, error) {
	if !d.OuterKnown {
		return shape.Tube{}, fmt.Errorf("Tube(%s, %d): outer diameter: %w", d.Type, d.Designator, ErrIncompleteData)
	}

	return shape.NewTubeBuilder().
		InnerDiameter(d.InnerDiameter).
		OuterDiameter(d.OuterDiameter).
		LinearMassDensity(d.LinearMassDensity).
		Build()
}

// Table returns every row, ordered by type then designator.
func Table() []Dimensions {
	types := make([]string, 0, len(dimensions))
	for t := range dimensions {
		types = append(types, t)
	}
	sort.Strings(types)

	var out []Dimensions
	for _, t := range types {
		for _, des := range Designators() {
			if d, err := LookupDesignator(t, des); err == nil {
				out = append(out, d)
			}
		}
	}

	return out
}
