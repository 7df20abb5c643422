// SPDX-License-Identifier: MIT

package conduit

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical conduit type names.
const (
	EMT    = "EMT"
	ENT    = "ENT"
	IMC    = "IMC"
	RMC    = "RMC"
	RMCPVC = "RMC-PVC"
	PVC40  = "PVC-40"
	PVC80  = "PVC-80"
	PVCA   = "PVC-A"
	PVCEB  = "PVC-EB"
	HDPE   = "HDPE"
	FMC    = "FMC"
	LFNCA  = "LFNC-A"
	LFNCB  = "LFNC-B"
	LFNCC  = "LFNC-C"
	LFMC   = "LFMC"
)

// aliases maps upper-case spellings to canonical type names.
var aliases = map[string]string{
	"EMT":     EMT,
	"ENT":     ENT,
	"IMC":     IMC,
	"RMC":     RMC,
	"GRC":     RMC,
	"RMC-PVC": RMCPVC,
	"PVC":     PVC40,
	"PVC-40":  PVC40,
	"PVC-80":  PVC80,
	"PVC-A":   PVCA,
	"PVC-EB":  PVCEB,
	"HDPE":    HDPE,
	"FMC":     FMC,
	"LFNC":    LFNCA,
	"LFNC-A":  LFNCA,
	"LFNC-B":  LFNCB,
	"LFNC-C":  LFNCC,
	"LFMC":    LFMC,
}

// CanonicalType resolves a conduit type alias, ignoring case and
// surrounding whitespace.
//
// Example:
//
//	CanonicalType("grc")  // "RMC"
//	CanonicalType("PVC")  // "PVC-40"
func CanonicalType(alias string) (string, error) {
	t, ok := aliases[strings.ToUpper(strings.TrimSpace(alias))]
	if !ok {
		return "", fmt.Errorf("CanonicalType(%q): %w", alias, ErrUnknownType)
	}

	return t, nil
}

// Types returns every canonical type name, sorted.
func Types() []string {
	seen := make(map[string]struct{}, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, t := range aliases {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}
