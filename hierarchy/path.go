// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Path is a cost-code path from the top of the hierarchy down.
type Path[T cmp.Ordered] []T

// NewPath copies labels into a Path.
func NewPath[T cmp.Ordered](labels ...T) (Path[T], error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("NewPath: %w", ErrEmptyPath)
	}

	return slices.Clone(Path[T](labels)), nil
}

// ParsePath splits s on sep and trims each label: "Electrical > Power"
// with sep ">" gives [Electrical Power]. Empty labels are dropped.
func ParsePath(s, sep string) (Path[string], error) {
	var labels []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			labels = append(labels, p)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("ParsePath(%q): %w", s, ErrEmptyPath)
	}

	return labels, nil
}

// Compare orders paths element-wise; a proper prefix sorts first.
func (p Path[T]) Compare(o Path[T]) int {
	return slices.Compare(p, o)
}

// Depth is the number of labels minus one; top-level paths have depth 0.
func (p Path[T]) Depth() int { return len(p) - 1 }

// Last returns the final label.
func (p Path[T]) Last() T { return p[len(p)-1] }

// Parent returns the path without its last label; ok is false at the top.
func (p Path[T]) Parent() (Path[T], bool) {
	if len(p) <= 1 {
		return nil, false
	}

	return slices.Clone(p[:len(p)-1]), true
}

// Child returns a new path with label appended.
func (p Path[T]) Child(label T) Path[T] {
	out := make(Path[T], len(p), len(p)+1)
	copy(out, p)

	return append(out, label)
}

// IsAncestorOf reports whether p is a proper prefix of o.
func (p Path[T]) IsAncestorOf(o Path[T]) bool {
	return len(p) < len(o) && slices.Equal(p, o[:len(p)])
}

// String joins the labels with " > ".
func (p Path[T]) String() string {
	parts := make([]string, len(p))
	for i, l := range p {
		parts[i] = fmt.Sprint(l)
	}

	return strings.Join(parts, " > ")
}
