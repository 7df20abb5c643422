// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/estkit/laborfactor"
	"github.com/spf13/cobra"
)

type laborResult struct {
	laborfactor.Compound
	Hours    float64 `json:"hours" msgpack:"hours"`
	Adjusted float64 `json:"adjusted_hours" msgpack:"adjusted_hours"`
}

func (a *app) laborCmd() *cobra.Command {
	var height, runs, ambient, rh float64
	cmd := &cobra.Command{
		Use:   "labor <hours>",
		Short: "Adjust labor hours by installation conditions",
		Long: "Multiplies base hours by the factor of every condition given.\n" +
			"Factors that extrapolate or are not calibrated are logged as warnings.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseFloatArg(args[0])
			if err != nil {
				return err
			}
			if hours < 0 {
				return fmt.Errorf("%v hours: %w", hours, errNegative)
			}

			var factors []laborfactor.Factor
			flags := cmd.Flags()
			if flags.Changed("height") {
				f, err := laborfactor.MountingHeight(height)
				if err != nil {
					return err
				}
				factors = append(factors, f)
			}
			if flags.Changed("runs") {
				f, err := laborfactor.ParallelRuns(runs)
				if err != nil {
					return err
				}
				factors = append(factors, f)
			}
			if flags.Changed("ambient") {
				factors = append(factors, laborfactor.AmbientTemperature(ambient))
			}
			if flags.Changed("rh") {
				factors = append(factors, laborfactor.AmbientRelativeHumidity(rh))
			}

			c := laborfactor.Combine(factors...)
			for _, w := range c.Warnings {
				a.log.Warn().Str("command", "labor").Msg(w)
			}
			r := laborResult{Compound: c, Hours: hours, Adjusted: c.Apply(hours)}

			var b strings.Builder
			for _, f := range c.Factors {
				fmt.Fprintf(&b, "%-26s %8.2f  x%.3f\n", f.Dimension, f.Value, f.Multiplier)
			}
			for _, w := range c.Warnings {
				fmt.Fprintf(&b, "warning: %s\n", w)
			}
			fmt.Fprintf(&b, "%.2f h x%.3f = %.2f h", hours, c.Multiplier, r.Adjusted)

			return a.emit(r, b.String())
		},
	}
	f := cmd.Flags()
	f.Float64Var(&height, "height", 0, "mounting height in feet")
	f.Float64Var(&runs, "runs", 1, "parallel runs pulled together")
	f.Float64Var(&ambient, "ambient", 30, "ambient temperature in °C")
	f.Float64Var(&rh, "rh", 50, "ambient relative humidity in percent")

	return cmd
}
