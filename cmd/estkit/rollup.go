// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/estkit/hierarchy"
	"github.com/spf13/cobra"
)

type rollupEntry struct {
	Path  []string `json:"path" msgpack:"path"`
	Own   float64  `json:"own" msgpack:"own"`
	Total float64  `json:"total" msgpack:"total"`
}

func (a *app) rollupCmd() *cobra.Command {
	var (
		sep   string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "rollup [file]",
		Short: "Roll quantities up a cost-code hierarchy",
		Long: "Each input line is \"<code>, <quantity>\", for example\n" +
			"\"Electrical > Power > Feeders, 36\". Blank lines and lines\n" +
			"starting with # are ignored. Reads stdin without a file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			tree, err := readRollup(in, sep)
			if err != nil {
				return err
			}

			var (
				out   []rollupEntry
				lines []string
			)
			res, err := tree.Walk(
				hierarchy.WithContext[string](cmd.Context()),
				hierarchy.WithMaxDepth[string](depth),
				hierarchy.WithOnVisit(func(e hierarchy.Entry[string]) error {
					out = append(out, rollupEntry{Path: e.Path, Own: e.Own, Total: e.Total})
					lines = append(lines, fmt.Sprintf("%s%-*s %10.2f",
						strings.Repeat("  ", e.Depth()), 30-2*e.Depth(), e.Path.Last(), e.Total))
					return nil
				}),
			)
			if err != nil {
				return err
			}
			total, _ := tree.Total()
			lines = append(lines, fmt.Sprintf("%-30s %10.2f", "TOTAL", total))
			a.log.Debug().Int("nodes", len(res.Order)).Float64("total", total).Msg("rollup")

			return a.emit(out, strings.Join(lines, "\n"))
		},
	}
	cmd.Flags().StringVar(&sep, "sep", ">", "cost-code level separator")
	cmd.Flags().IntVar(&depth, "depth", -1, "deepest level to print, 0 for top level only")

	return cmd
}

// readRollup parses "<code>, <quantity>" lines into a tree.
func readRollup(r io.Reader, sep string) (*hierarchy.Tree[string], error) {
	tree := hierarchy.NewTree[string]()
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.LastIndex(line, ",")
		if i < 0 {
			return nil, fmt.Errorf("line %d: missing quantity: %w", n, errNotNumber)
		}
		path, err := hierarchy.ParsePath(line[:i], sep)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		qty, err := parseFloatArg(line[i+1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if err := tree.Add(path, qty); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}

	return tree, sc.Err()
}
