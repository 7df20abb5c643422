// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/estkit/base26"
	"github.com/katalvlaran/estkit/mixednum"
	"github.com/katalvlaran/estkit/wiregauge"
	"github.com/spf13/cobra"
)

type mixedResult struct {
	Input string  `json:"input" msgpack:"input"`
	Value float64 `json:"value" msgpack:"value"`
	Text  string  `json:"text" msgpack:"text"`
}

func (a *app) mixedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mixed",
		Short: "Parse and format mixed numbers such as 2-3/4",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "parse <mixed-number>...",
			Short: "Convert mixed numbers to decimals",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				var out []mixedResult
				var lines []string
				for _, s := range args {
					v, err := mixednum.Parse(s)
					if err != nil {
						return err
					}
					a.log.Debug().Str("input", s).Float64("value", v).Msg("parsed mixed number")
					out = append(out, mixedResult{Input: s, Value: v, Text: mixednum.Format(v)})
					lines = append(lines, strconv.FormatFloat(v, 'f', -1, 64))
				}
				return a.emit(out, strings.Join(lines, "\n"))
			},
		},
		&cobra.Command{
			Use:   "format <decimal>...",
			Short: "Convert decimals to the nearest 1/32 mixed number",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				var out []mixedResult
				var lines []string
				for _, s := range args {
					v, err := parseFloatArg(s)
					if err != nil {
						return err
					}
					text := mixednum.Format(v)
					out = append(out, mixedResult{Input: s, Value: v, Text: text})
					lines = append(lines, text)
				}
				return a.emit(out, strings.Join(lines, "\n"))
			},
		},
	)

	return cmd
}

type gaugeResult struct {
	Input    string  `json:"input" msgpack:"input"`
	Label    string  `json:"label" msgpack:"label"`
	Diameter float64 `json:"diameter" msgpack:"diameter"`
}

func (a *app) gaugeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Convert AWG and kcmil conductor sizes",
	}

	each := func(args []string, f func(string) (gaugeResult, error), line func(gaugeResult) string) error {
		var out []gaugeResult
		var lines []string
		for _, s := range args {
			r, err := f(s)
			if err != nil {
				return err
			}
			out = append(out, r)
			lines = append(lines, line(r))
		}
		return a.emit(out, strings.Join(lines, "\n"))
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "parse <size>...",
			Short: "Diameter in inches of any AWG or kcmil notation",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return each(args, func(s string) (gaugeResult, error) {
					g, err := wiregauge.Parse(s)
					if err != nil {
						return gaugeResult{}, err
					}
					return gaugeResult{Input: s, Label: g.String(), Diameter: g.Diameter()}, nil
				}, func(r gaugeResult) string { return strconv.FormatFloat(r.Diameter, 'f', 4, 64) })
			},
		},
		&cobra.Command{
			Use:   "format <diameter-in>...",
			Short: "Size notation of a diameter in inches",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return each(args, func(s string) (gaugeResult, error) {
					d, err := parseFloatArg(s)
					if err != nil {
						return gaugeResult{}, err
					}
					label, err := wiregauge.FormatDiameter(d)
					if err != nil {
						return gaugeResult{}, err
					}
					return gaugeResult{Input: s, Label: label, Diameter: d}, nil
				}, func(r gaugeResult) string { return r.Label })
			},
		},
		&cobra.Command{
			Use:   "canonical <size>...",
			Short: "Normalize a size to its table label",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return each(args, func(s string) (gaugeResult, error) {
					label, err := wiregauge.Canonical(s)
					if err != nil {
						return gaugeResult{}, err
					}
					d, _ := wiregauge.ParseDiameter(s)
					return gaugeResult{Input: s, Label: label, Diameter: d}, nil
				}, func(r gaugeResult) string { return r.Label })
			},
		},
		&cobra.Command{
			Use:   "lookup <size>...",
			Short: "Tabulated diameter of a standard building-wire size",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return each(args, func(s string) (gaugeResult, error) {
					label, err := wiregauge.Canonical(s)
					if err != nil {
						return gaugeResult{}, err
					}
					g, err := wiregauge.FromLookup(label)
					if err != nil {
						return gaugeResult{}, err
					}
					return gaugeResult{Input: s, Label: g.String(), Diameter: g.Diameter()}, nil
				}, func(r gaugeResult) string {
					return fmt.Sprintf("%-10s %.4f in", r.Label, r.Diameter)
				})
			},
		},
	)

	return cmd
}

type columnResult struct {
	Index int    `json:"index" msgpack:"index"`
	Label string `json:"label" msgpack:"label"`
}

func (a *app) columnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Convert between spreadsheet column letters and numbers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <n>...",
			Short: "Column letters of 1-based numbers",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				var out []columnResult
				var lines []string
				for _, s := range args {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("%q: %w", s, errNotNumber)
					}
					label, err := base26.Encode(n)
					if err != nil {
						return err
					}
					out = append(out, columnResult{Index: n, Label: label})
					lines = append(lines, label)
				}
				return a.emit(out, strings.Join(lines, "\n"))
			},
		},
		&cobra.Command{
			Use:   "decode <letters>...",
			Short: "1-based numbers of column letters",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				var out []columnResult
				var lines []string
				for _, s := range args {
					n, err := base26.Decode(s)
					if err != nil {
						return err
					}
					out = append(out, columnResult{Index: n, Label: strings.ToUpper(s)})
					lines = append(lines, strconv.Itoa(n))
				}
				return a.emit(out, strings.Join(lines, "\n"))
			},
		},
	)

	return cmd
}

// parseFloatArg reads a decimal argument; failures are format errors.
func parseFloatArg(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errNotNumber)
	}
	return v, nil
}
