package core

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// The near-duplicate check uses distance semantics throughout: two keys
// score the sum of per-item Levenshtein edit distances, and a finding is
// emitted when the sum is at or below the configured level. A pairing that
// involves a synthetic identity contributes nothing to the sum: identities
// are never textually close to anything, including each other.

// keyDistance sums the per-item edit distance between two keys. Keys always
// have equal length here; every sheet resolves the same spec list.
func keyDistance(a, b Key) int {
	total := 0
	for i := range a.items {
		ai, bi := a.items[i], b.items[i]
		if ai.IsID || bi.IsID {
			continue
		}
		total += levenshtein.ComputeDistance(ai.Data, bi.Data)
	}
	return total
}

// warnSimilar compares a just-consumed group's key against every group
// still pending, in first-encountered order, and reports pairs within the
// configured distance. Consumed groups have left the pending set, so each
// pair is reported once, attributed to whichever group was consumed first.
func warnSimilar(g *group, pending map[string]*group, rest []string, level float64, diag DiagnosticSink) {
	for _, fp := range rest {
		other, ok := pending[fp]
		if !ok {
			continue
		}
		distance := keyDistance(g.key, other.key)
		if float64(distance) <= level {
			diag.Warn(
				fmt.Sprintf("Similar records encountered (edit distance = %d):", distance),
				g.key.String(),
				other.key.String(),
			)
		}
	}
}
