// SPDX-License-Identifier: MIT

// Package hierarchy organizes estimate quantities under cost-code paths
// such as Electrical > Power > Feeders and rolls them up.
//
// What:
//
//   - Path[T] is a non-empty sequence of ordered labels. Paths compare
//     element by element; when one is a prefix of the other the shorter
//     sorts first, so a parent always precedes its children:
//     [1 2] < [1 2 1] < [1 2 2] < [1 3].
//   - Tree[T] accumulates quantities at paths. Every node's Total is its
//     own quantity plus the totals of its children.
//   - Walk visits the tree depth-first in path order, with pre-order
//     (OnVisit) and post-order (OnExit) hooks, a depth limit, a subtree
//     filter and context cancellation.
//
// Complexity:
//
//   - Add:   O(d) map operations for a path of depth d.
//   - Walk:  O(n log k) for n nodes, sorting at most k children per node.
//
// Errors:
//
//   - ErrEmptyPath:       a path with no labels (DomainError).
//   - ErrNotFinite:       a NaN or infinite quantity (DomainError).
//   - ErrPathNotFound:    a path with nothing recorded under it (LookupError).
//   - context errors and hook errors from Walk, wrapped.
package hierarchy
