// SPDX-License-Identifier: MIT

package refdata

import (
	"github.com/katalvlaran/estkit/ampacity"
	"github.com/katalvlaran/estkit/conduit"
	"github.com/katalvlaran/estkit/rebar"
	"github.com/katalvlaran/estkit/starter"
	"github.com/katalvlaran/estkit/threadsize"
	"github.com/katalvlaran/estkit/wiregauge"
)

// SchemaVersion is bumped whenever a Snapshot field changes meaning.
const SchemaVersion = 1

// Snapshot holds every reference table.
type Snapshot struct {
	Version    int                  `json:"version" msgpack:"version"`
	WireSizes  []wiregauge.Size     `json:"wire_sizes" msgpack:"wire_sizes"`
	Ampacities []Ampacity           `json:"ampacities" msgpack:"ampacities"`
	Conduits   []conduit.Dimensions `json:"conduits" msgpack:"conduits"`
	Rebar      []Bar                `json:"rebar" msgpack:"rebar"`
	Starters   []starter.Rating     `json:"starters" msgpack:"starters"`
	Threads    []Thread             `json:"threads" msgpack:"threads"`
}

// Ampacity is ampacity.Entry with the material spelled out.
type Ampacity struct {
	Material string  `json:"material" msgpack:"material"`
	RatingC  int     `json:"rating_c" msgpack:"rating_c"`
	Size     string  `json:"size" msgpack:"size"`
	Amperes  float64 `json:"amperes" msgpack:"amperes"`
}

// Bar is one rebar size with its derived properties.
type Bar struct {
	Size              string  `json:"size" msgpack:"size"`
	NominalDiameter   float64 `json:"nominal_diameter" msgpack:"nominal_diameter"`
	Area              float64 `json:"area" msgpack:"area"`
	LinearMassDensity float64 `json:"linear_mass_density" msgpack:"linear_mass_density"`
}

// Thread is one numbered UTS size.
type Thread struct {
	Size          string  `json:"size" msgpack:"size"`
	MajorDiameter float64 `json:"major_diameter" msgpack:"major_diameter"`
}

// Build collects the current tables.
func Build() Snapshot {
	s := Snapshot{
		Version:   SchemaVersion,
		WireSizes: wiregauge.StandardSizes(),
		Conduits:  conduit.Table(),
		Starters:  starter.Ratings(),
	}
	for _, e := range ampacity.Entries() {
		s.Ampacities = append(s.Ampacities, Ampacity{
			Material: e.Material.String(),
			RatingC:  e.RatingC,
			Size:     e.Size,
			Amperes:  e.Amperes,
		})
	}
	for _, size := range rebar.Sizes() {
		b, err := rebar.FromBarSize(size)
		if err != nil {
			continue
		}
		s.Rebar = append(s.Rebar, Bar{
			Size:              b.Size(),
			NominalDiameter:   b.NominalDiameter(),
			Area:              b.Area(),
			LinearMassDensity: b.LinearMassDensity(),
		})
	}
	for _, size := range threadsize.NumberedSizes() {
		d, err := threadsize.MajorDiameter(size)
		if err != nil {
			continue
		}
		s.Threads = append(s.Threads, Thread{Size: size, MajorDiameter: d})
	}

	return s
}
