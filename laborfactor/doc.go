// SPDX-License-Identifier: MIT

// Package laborfactor builds multiplicative labor adjustment factors for
// installation estimates and combines them.
//
// Each Factor carries the input value, the multiplier it implies and an
// optional warning. Warnings are advisory: a factor outside its
// recommended range, or one whose model is not calibrated yet, still
// yields a usable multiplier, and the caller decides whether to surface it.
// Invalid input (negative height, fewer than one run) is an error instead.
//
// Models:
//
//	MountingHeight(h ft)   = 0.4 · h^0.3       (warns above 50 ft)
//	ParallelRuns(n)        = 1.2 · n^−0.115    (n ≥ 1)
//	AmbientTemperature     = 1                 (warns: not calibrated)
//	AmbientRelativeHumidity = 1                (warns: not calibrated)
//
// Combine multiplies factors and collects their warnings; Merge flattens
// several compounds into one.
package laborfactor
