// SPDX-License-Identifier: MIT

// Package evidence combines uncertain judgements with Dempster–Shafer
// theory, e.g. several estimators' opinions on which crew, method or
// productivity band applies.
//
// What:
//
//	A Mass assigns belief mass to focal sets (non-empty subsets of a frame
//	of discernment). Masses lie in [0, 1] and sum to 1 within 1e-8.
//	Mass sitting on a larger set expresses ignorance among its members.
//
//	Belief(S)       = Σ m(A) for A ⊆ S
//	Plausibility(S) = Σ m(A) for A ∩ S ≠ ∅
//	Pignistic(x)    = Σ m(A)/|A| for x ∈ A
//
// Combination:
//
//	Combine applies Dempster's rule:
//	    K     = Σ m1(B)·m2(C) over B ∩ C = ∅
//	    m(A)  = Σ m1(B)·m2(C) over B ∩ C = A, divided by 1 − K
//	Total conflict (K = 1) returns ErrTotalConflict.
//
// Sets are held as sorted, de-duplicated slices, so element types must be
// cmp.Ordered and every listing (Focals, Frame) is deterministic.
package evidence
