// SPDX-License-Identifier: MIT

// Package threadsize handles Unified Thread Standard (UTS) designations such
// as "#10-32" and "1/4-20".
//
// A designation is a major diameter (a numbered size below 1/4 in, or an
// inch fraction) and a thread density in threads per inch. Numbered sizes
// follow d = 0.060 + 0.013·N inches. Without a "#", a whole-number size is
// read as numbered only when its density is standard for that number:
// "10-24" is #10, "1-8" is a 1 in bolt.
//
// Basic profile, with pitch P = 1/TPI:
//
//	pitch diameter = d − 0.649519·P
//	minor diameter = d − 1.299038·P   (external thread)
package threadsize
