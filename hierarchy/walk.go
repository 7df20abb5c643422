// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"context"
	"fmt"
)

// Entry is one node as seen by Walk.
type Entry[T cmp.Ordered] struct {
	Path  Path[T]
	Own   float64
	Total float64
}

// Depth is the depth of the entry's path.
func (e Entry[T]) Depth() int { return e.Path.Depth() }

// Option configures Walk.
type Option[T cmp.Ordered] func(*WalkOptions[T])

// WalkOptions holds the Walk configuration.
type WalkOptions[T cmp.Ordered] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is reached (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(Entry[T]) error

	// OnExit, if non-nil, runs after a node's children (post-order).
	// Returning an error aborts the walk.
	OnExit func(Entry[T]) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// 0 visits only top-level paths. Default -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is asked before entering each node; false
	// skips the node and its whole subtree.
	Filter func(Path[T]) bool
}

// DefaultOptions returns a background context, no hooks, no depth limit
// and no filter.
func DefaultOptions[T cmp.Ordered]() WalkOptions[T] {
	return WalkOptions[T]{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the context; nil keeps Background.
func WithContext[T cmp.Ordered](ctx context.Context) Option[T] {
	return func(o *WalkOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit[T cmp.Ordered](fn func(Entry[T]) error) Option[T] {
	return func(o *WalkOptions[T]) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit[T cmp.Ordered](fn func(Entry[T]) error) Option[T] {
	return func(o *WalkOptions[T]) { o.OnExit = fn }
}

// WithMaxDepth limits descent to depth limit.
func WithMaxDepth[T cmp.Ordered](limit int) Option[T] {
	return func(o *WalkOptions[T]) { o.MaxDepth = limit }
}

// WithFilter skips subtrees whose path fn rejects.
func WithFilter[T cmp.Ordered](fn func(Path[T]) bool) Option[T] {
	return func(o *WalkOptions[T]) { o.Filter = fn }
}

// WalkResult lists the visited entries.
type WalkResult[T cmp.Ordered] struct {
	// Order is pre-order: every parent precedes its children, siblings
	// ascend by label. It is the order of an indented cost report.
	Order []Entry[T]

	// Skipped counts nodes rejected by Filter.
	Skipped int
}

type walker[T cmp.Ordered] struct {
	opts WalkOptions[T]
	res  *WalkResult[T]
}

// Walk traverses the tree depth-first. On error it returns the entries
// visited so far together with the error.
func (t *Tree[T]) Walk(opts ...Option[T]) (*WalkResult[T], error) {
	wopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&wopts)
	}

	w := &walker[T]{opts: wopts, res: &WalkResult[T]{}}
	for _, label := range t.root.sortedLabels() {
		if err := w.traverse(Path[T]{label}, t.root.children[label]); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker[T]) traverse(p Path[T], n *node[T]) error {
	// 1. Cancellation
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit and filter
	if w.opts.MaxDepth >= 0 && p.Depth() > w.opts.MaxDepth {
		return nil
	}
	if w.opts.Filter != nil && !w.opts.Filter(p) {
		w.res.Skipped++
		return nil
	}

	// 3. Pre-order
	e := Entry[T]{Path: p, Own: n.own, Total: n.total}
	w.res.Order = append(w.res.Order, e)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(e); err != nil {
			return fmt.Errorf("hierarchy: OnVisit hook for %v: %w", p, err)
		}
	}

	// 4. Children in label order
	for _, label := range n.sortedLabels() {
		if err := w.traverse(p.Child(label), n.children[label]); err != nil {
			return err
		}
	}

	// 5. Post-order
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(e); err != nil {
			return fmt.Errorf("hierarchy: OnExit hook for %v: %w", p, err)
		}
	}

	return nil
}
