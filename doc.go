// SPDX-License-Identifier: MIT

// Package estkit is a toolbox of size codecs and reference tables for
// electrical and construction estimating.
//
// 🚀 What is estkit?
//
//	Small, pure, dependency-light packages that turn the sizes written on
//	drawings and takeoff sheets into numbers, and numbers back into sizes:
//		• Mixed numbers & fractions:  "2-3/4" ⇄ 2.75      (mixednum)
//		• Wire gauges:                "4/0 AWG", "250 kcmil" ⇄ diameter (wiregauge)
//		• Spreadsheet-style labels:   "AA" ⇄ 27            (base26)
//		• Conduit, rebar, starters, threads, ampacity tables
//		• Labor factors, shapes, run lengths, intervals, evidence combination
//
// ✨ Why estkit?
//
//   - Strict grammars – every codec rejects what it cannot round-trip
//   - Explicit precision – lossy steps are named constants, not magic numbers
//   - One error taxonomy – ErrFormat / ErrDomain / ErrLookup via errors.Is
//   - Pure Go – no I/O, no globals that change after init, safe for concurrent use
//
// Packages:
//
//	mixednum/    — mixed-number parsing, dyadic (1/32) formatting
//	wiregauge/   — AWG + kcmil codec, standard size table, Gauge value
//	base26/      — bijective base-26 ("A".."Z","AA",...)
//	conduit/     — conduit aliases, trade size ⇄ metric designator, dimensions
//	ampacity/    — conductor ampacity table, ambient correction
//	rebar/       — imperial bar sizes, weight
//	starter/     — NEMA starter sizing
//	threadsize/  — UTS numbered screw sizes
//	laborfactor/ — labor adjustment factors with warnings
//	shape/       — Tube, Cylinder, Box builders
//	distance/    — run-length metrics
//	interval/    — interval arithmetic
//	evidence/    — Dempster–Shafer combination
//	hierarchy/   — cost-code paths, quantity rollup, depth-first walk
//	refdata/     — snapshot of every static table (JSON / msgpack)
//
// Quick example:
//
//	d, _ := wiregauge.ParseDiameter("#12")   // 0.0808 in
//	s, _ := wiregauge.FormatDiameter(d)      // "12 AWG"
//	v, _ := mixednum.Parse("1-1/4")          // 1.25
//	mixednum.Format(v)                       // "1-1/4"
//
//	go get github.com/katalvlaran/estkit
package estkit
