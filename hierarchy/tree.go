// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// node is one label in the tree.
type node[T cmp.Ordered] struct {
	own      float64
	total    float64
	children map[T]*node[T]
}

func newNode[T cmp.Ordered]() *node[T] {
	return &node[T]{children: make(map[T]*node[T])}
}

// sortedLabels returns the child labels in ascending order.
func (n *node[T]) sortedLabels() []T {
	labels := make([]T, 0, len(n.children))
	for l := range n.children {
		labels = append(labels, l)
	}
	slices.Sort(labels)

	return labels
}

// Tree accumulates quantities under paths. The zero value is not usable;
// call NewTree. A Tree is not safe for concurrent mutation.
type Tree[T cmp.Ordered] struct {
	root *node[T]
}

// NewTree returns an empty tree.
func NewTree[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{root: newNode[T]()}
}

// Add records qty at path, creating intermediate nodes as needed.
// Negative quantities (credits) are allowed.
func (t *Tree[T]) Add(path Path[T], qty float64) error {
	if len(path) == 0 {
		return fmt.Errorf("Add: %w", ErrEmptyPath)
	}
	if math.IsNaN(qty) || math.IsInf(qty, 0) {
		return fmt.Errorf("Add(%v, %v): %w", path, qty, ErrNotFinite)
	}

	n := t.root
	n.total += qty
	for _, label := range path {
		child, ok := n.children[label]
		if !ok {
			child = newNode[T]()
			n.children[label] = child
		}
		n = child
		n.total += qty
	}
	n.own += qty

	return nil
}

// Total returns the rolled-up quantity at path; with no path it returns
// the grand total.
func (t *Tree[T]) Total(path ...T) (float64, error) {
	n, err := t.find(path)
	if err != nil {
		return 0, err
	}

	return n.total, nil
}

// Own returns the quantity recorded exactly at path.
func (t *Tree[T]) Own(path ...T) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("Own: %w", ErrEmptyPath)
	}
	n, err := t.find(path)
	if err != nil {
		return 0, err
	}

	return n.own, nil
}

// Children returns the child labels of path in ascending order; with no
// path it returns the top-level labels.
func (t *Tree[T]) Children(path ...T) ([]T, error) {
	n, err := t.find(path)
	if err != nil {
		return nil, err
	}

	return n.sortedLabels(), nil
}

func (t *Tree[T]) find(path []T) (*node[T], error) {
	n := t.root
	for i, label := range path {
		child, ok := n.children[label]
		if !ok {
			return nil, fmt.Errorf("%v: %w", Path[T](path[:i+1]), ErrPathNotFound)
		}
		n = child
	}

	return n, nil
}
