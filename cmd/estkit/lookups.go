// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/estkit/ampacity"
	"github.com/katalvlaran/estkit/conduit"
	"github.com/katalvlaran/estkit/rebar"
	"github.com/katalvlaran/estkit/refdata"
	"github.com/katalvlaran/estkit/shape"
	"github.com/katalvlaran/estkit/starter"
	"github.com/spf13/cobra"
)

type conduitResult struct {
	conduit.Dimensions
	TradeSize string  `json:"trade_size" msgpack:"trade_size"`
	InnerArea float64 `json:"inner_area" msgpack:"inner_area"`
	Wall      float64 `json:"wall_thickness,omitempty" msgpack:"wall_thickness,omitempty"`
	Weight    float64 `json:"weight,omitempty" msgpack:"weight,omitempty"`
}

func (a *app) conduitCmd() *cobra.Command {
	var (
		conduitType string
		length      float64
	)
	cmd := &cobra.Command{
		Use:   "conduit <trade-size>",
		Short: "Dimensions and weight of a conduit size",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if length < 0 || math.IsNaN(length) {
				return fmt.Errorf("--length %v: %w", length, shape.ErrNegativeLength)
			}
			if conduitType == "" {
				conduitType = a.cfg.DefaultConduitType
			}
			d, err := conduit.Lookup(args[0], conduitType)
			if err != nil {
				return err
			}
			trade, _ := conduit.TradeSize(d.Designator)
			r := conduitResult{Dimensions: d, TradeSize: trade}
			r.InnerArea = innerArea(d.InnerDiameter)
			r.Weight = d.LinearMassDensity * length

			var b strings.Builder
			fmt.Fprintf(&b, "%s %s (metric %d)\n", trade, d.Type, d.Designator)
			fmt.Fprintf(&b, "  ID %.3f in, bore %.3f in²\n", d.InnerDiameter, r.InnerArea)
			if tube, err := d.Tube(); err == nil {
				r.Wall = tube.WallThickness()
				fmt.Fprintf(&b, "  OD %.3f in, wall %.3f in\n", d.OuterDiameter, r.Wall)
			} else {
				fmt.Fprintln(&b, "  OD not published")
			}
			fmt.Fprintf(&b, "  %.2f lb/ft", d.LinearMassDensity)
			if length > 0 {
				fmt.Fprintf(&b, ", %.1f lb per %v ft", r.Weight, length)
			}
			return a.emit(r, b.String())
		},
	}
	cmd.Flags().StringVarP(&conduitType, "type", "t", "", "conduit type (default from config)")
	cmd.Flags().Float64VarP(&length, "length", "l", 0, "run length in feet for a weight")

	return cmd
}

func innerArea(id float64) float64 {
	r := id / 2
	return math.Pi * r * r
}

type ampacityResult struct {
	Material string  `json:"material" msgpack:"material"`
	RatingC  int     `json:"rating_c" msgpack:"rating_c"`
	Size     string  `json:"size" msgpack:"size"`
	Amperes  float64 `json:"amperes" msgpack:"amperes"`
	AmbientC float64 `json:"ambient_c" msgpack:"ambient_c"`
}

func (a *app) ampacityCmd() *cobra.Command {
	var (
		material string
		ratingC  int
		ambientC float64
	)
	resolve := func() (ampacity.Material, int, error) {
		if material == "" {
			material = a.cfg.DefaultMaterial
		}
		if ratingC == 0 {
			ratingC = a.cfg.DefaultRatingC
		}
		m, err := ampacity.ParseMaterial(material)
		return m, ratingC, err
	}

	cmd := &cobra.Command{
		Use:   "ampacity",
		Short: "Conductor ampacity and minimum conductor size",
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&material, "material", "m", "", "copper or aluminum (default from config)")
	pf.IntVarP(&ratingC, "rating", "r", 0, "insulation rating °C: 60, 75 or 90 (default from config)")
	pf.Float64Var(&ambientC, "ambient", ampacity.TableAmbientC, "ambient temperature °C")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "lookup <size>",
			Short: "Ampacity of a conductor size",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				m, r, err := resolve()
				if err != nil {
					return err
				}
				amps, err := ampacity.Lookup(m, r, args[0])
				if err != nil {
					return err
				}
				amps, err = ampacity.CorrectForAmbient(amps, r, ambientC)
				if err != nil {
					return err
				}
				res := ampacityResult{Material: m.String(), RatingC: r, Size: args[0], Amperes: amps, AmbientC: ambientC}
				return a.emit(res, fmt.Sprintf("%.1f A", amps))
			},
		},
		&cobra.Command{
			Use:   "size <amperes>",
			Short: "Smallest conductor that carries a load",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				m, r, err := resolve()
				if err != nil {
					return err
				}
				load, err := parseFloatArg(args[0])
				if err != nil {
					return err
				}
				// Size against the table value the load needs at this ambient.
				derate, err := ampacity.CorrectForAmbient(1, r, ambientC)
				if err != nil {
					return err
				}
				size, err := ampacity.MinimumSize(m, r, load/derate)
				if err != nil {
					return err
				}
				amps, _ := ampacity.Lookup(m, r, size)
				res := ampacityResult{Material: m.String(), RatingC: r, Size: size, Amperes: amps * derate, AmbientC: ambientC}
				a.log.Debug().Float64("load", load).Float64("derate", derate).Str("size", size).Msg("sized conductor")
				return a.emit(res, size)
			},
		},
	)

	return cmd
}

type rebarResult struct {
	refdata.Bar
	Length float64 `json:"length,omitempty" msgpack:"length,omitempty"`
	Weight float64 `json:"weight,omitempty" msgpack:"weight,omitempty"`
}

func (a *app) rebarCmd() *cobra.Command {
	var length float64
	cmd := &cobra.Command{
		Use:   "rebar <bar-size>",
		Short: "Diameter, area and weight of a rebar size",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := rebar.FromBarSize(args[0])
			if err != nil {
				return err
			}
			w, err := b.Weight(length)
			if err != nil {
				return err
			}
			r := rebarResult{
				Bar: refdata.Bar{
					Size:              b.Size(),
					NominalDiameter:   b.NominalDiameter(),
					Area:              b.Area(),
					LinearMassDensity: b.LinearMassDensity(),
				},
				Length: length,
				Weight: w,
			}
			text := fmt.Sprintf("%s: %.3f in, %.3f in², %.3f lb/ft", b.Size(), b.NominalDiameter(), b.Area(), b.LinearMassDensity())
			if length > 0 {
				text += fmt.Sprintf(", %.1f lb", w)
			}
			return a.emit(r, text)
		},
	}
	cmd.Flags().Float64VarP(&length, "length", "l", 0, "length in feet for a weight")

	return cmd
}

type starterResult struct {
	Size       string  `json:"size" msgpack:"size"`
	Amperes    float64 `json:"amperes" msgpack:"amperes"`
	Volts      float64 `json:"volts" msgpack:"volts"`
	Watts      float64 `json:"watts" msgpack:"watts"`
	Horsepower float64 `json:"horsepower" msgpack:"horsepower"`
}

func (a *app) starterCmd() *cobra.Command {
	var (
		volts              float64
		amps, watts, horse float64
	)
	cmd := &cobra.Command{
		Use:   "starter [nema-size]",
		Short: "NEMA starter ratings, or the size for a load (--amps, --watts or --hp)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if volts == 0 {
				volts = a.cfg.DefaultVoltage
			}

			var (
				size string
				err  error
			)
			switch {
			case len(args) == 1:
				size, err = starter.CanonicalSize(args[0])
			case cmd.Flags().Changed("amps"):
				size, err = starter.MinimumSizeForAmperes(amps)
			case cmd.Flags().Changed("watts"):
				size, err = starter.MinimumSizeForWatts(watts, volts)
			case cmd.Flags().Changed("hp"):
				size, err = starter.MinimumSizeForHorsepower(horse, volts)
			default:
				return fmt.Errorf("starter: give a NEMA size or one of --amps, --watts, --hp")
			}
			if err != nil {
				return err
			}

			r := starterResult{Size: size, Volts: volts}
			if r.Amperes, err = starter.MaxContinuousAmperes(size); err != nil {
				return err
			}
			if r.Watts, err = starter.MaxPowerWatts(size, volts); err != nil {
				return err
			}
			r.Horsepower = r.Watts / starter.WattsPerHorsepower

			return a.emit(r, fmt.Sprintf("NEMA %s: %.0f A, %.0f W, %.1f hp at %v V", r.Size, r.Amperes, r.Watts, r.Horsepower, volts))
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&volts, "volts", "v", 0, "line-to-line voltage (default from config)")
	f.Float64Var(&amps, "amps", 0, "continuous load in amperes")
	f.Float64Var(&watts, "watts", 0, "three-phase load in watts")
	f.Float64Var(&horse, "hp", 0, "three-phase motor horsepower")
	cmd.MarkFlagsMutuallyExclusive("amps", "watts", "hp")

	return cmd
}

func (a *app) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Dump every reference table (json by default, or --output msgpack)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f := refdata.JSON
			if a.cfg.Output == "msgpack" {
				f = refdata.MsgPack
			}
			s := refdata.Build()
			a.log.Debug().Int("conduits", len(s.Conduits)).Int("ampacities", len(s.Ampacities)).Msg("snapshot built")
			return refdata.Encode(a.out, f, s)
		},
	}
}
