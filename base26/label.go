// SPDX-License-Identifier: MIT

package base26

import "cmp"

// Label is a positive integer that prints as its bijective base-26 form.
type Label int

// ParseLabel decodes s into a Label.
func ParseLabel(s string) (Label, error) {
	n, err := Decode(s)
	if err != nil {
		return 0, err
	}

	return Label(n), nil
}

// String returns the label text, or "" for values below 1.
func (l Label) String() string {
	s, err := Encode(int(l))
	if err != nil {
		return ""
	}

	return s
}

// Next returns the following label (Z → AA).
func (l Label) Next() Label { return l + 1 }

// Compare orders labels by value, so "Z" < "AA".
func (l Label) Compare(other Label) int {
	return cmp.Compare(l, other)
}
