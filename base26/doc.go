// SPDX-License-Identifier: MIT

// Package base26 converts between positive integers and bijective base-26
// labels, the scheme spreadsheets use for column names: A=1 … Z=26, AA=27,
// AZ=52, BA=53.
//
// Bijective means no digit stands for zero, which is why encoding subtracts
// one before every division:
//
//	for n > 0 { n--; prepend('A' + n%26); n /= 26 }
//
// Decoding accepts letters in either case and always encodes upper-case.
//
// Errors:
//
//   - ErrEmpty, ErrInvalidLetter: malformed label (FormatError).
//   - ErrNonPositive:             Encode(n) with n ≤ 0 (DomainError).
//   - ErrOverflow:                label too long for int (DomainError).
package base26
