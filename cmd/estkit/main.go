// SPDX-License-Identifier: MIT

// Command estkit exposes the estkit codecs and reference tables on the
// command line.
//
//	estkit mixed parse "2-3/4"
//	estkit gauge format 0.2043
//	estkit conduit "1-1/4" --type PVC
//	estkit tables --output msgpack > tables.mp
//
// Defaults come from estkit.toml (or --config / ESTKIT_CONFIG). The exit
// status is 2 for malformed input, 3 for out-of-range values, 4 for table
// misses and 1 for anything else.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().Execute()
	if err != nil {
		a.log.Error().Err(err).Int("exit", exitCode(err)).Msg("command failed")
		fmt.Fprintln(os.Stderr, "estkit:", err)
	}
	os.Exit(exitCode(err))
}
