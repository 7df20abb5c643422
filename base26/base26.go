// SPDX-License-Identifier: MIT

package base26

import (
	"fmt"
	"math"
)

// radix is the number of letters in the alphabet.
const radix = 26

// Encode returns the bijective base-26 label of n (n ≥ 1).
//
// Example:
//
//	Encode(1)  // "A"
//	Encode(27) // "AA"
//	Encode(0)  // ErrNonPositive
func Encode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("Encode(%d): %w", n, ErrNonPositive)
	}

	// 14 letters hold any 64-bit value.
	buf := make([]byte, 0, 14)
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%radix))
		n /= radix
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf), nil
}

// Decode returns the integer value of a label; letters are case-insensitive.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("Decode: %w", ErrEmpty)
	}

	n := 0
	for i := 0; i < len(s); i++ {
		d, ok := digit(s[i])
		if !ok {
			return 0, fmt.Errorf("Decode(%q): position %d: %w", s, i, ErrInvalidLetter)
		}
		if n > (math.MaxInt-d)/radix {
			return 0, fmt.Errorf("Decode(%q): %w", s, ErrOverflow)
		}
		n = n*radix + d
	}

	return n, nil
}

// digit maps 'A'..'Z' / 'a'..'z' to 1..26.
func digit(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 1, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, true
	default:
		return 0, false
	}
}
