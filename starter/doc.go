// SPDX-License-Identifier: MIT

// Package starter sizes three-phase NEMA motor starters.
//
// Each NEMA size has a maximum continuous current. Power and horsepower
// limits follow from the line-to-line voltage:
//
//	W  = A · V · √3
//	hp = W / 746
//
// The Minimum* functions return the smallest size whose continuous rating
// covers the load, rounding the current up to a whole ampere first.
package starter
