// SPDX-License-Identifier: MIT

// Package rebar describes standard imperial reinforcing bar: nominal
// diameter, cross-section area and weight per foot.
//
// Bar sizes are the number of eighths of an inch in the nominal diameter
// up to #8 ("#3" = 3/8 in); larger bars follow the ASTM table, and #14J
// and #18J are the jumbo variants. The weight per foot is a regression of
// the published values:
//
//	lb/ft = 3.40223 · area(in²)
package rebar
