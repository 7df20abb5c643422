// SPDX-License-Identifier: MIT

// Package refdata gathers every static reference table of estkit into one
// Snapshot and encodes it as JSON or MessagePack, for tools that want the
// data without linking the lookups (spreadsheets, other services, caches).
//
// A Snapshot is derived from the packages at call time, so it never drifts
// from what the lookup functions return.
package refdata
