package analysis

import (
	"scar/internal/parser"
	"scar/internal/resolver"
	"scar/internal/shared/observability"
)

// Diagnostics accumulates every locally recovered failure of a run. None
// of these abort the batch; they ride alongside the rankings so nothing is
// silently swallowed.
type Diagnostics struct {
	UnreadableFiles int
	// Quoted includes that matched no discovered file, retained with
	// their positions for display.
	UnresolvedLocal []parser.RawInclude
	// Includes that matched more than one candidate; the deterministic
	// first root won.
	Ambiguous int
	// Files with a direct self-edge.
	SelfIncludes []string
}

func (d *Diagnostics) record(r resolver.Resolution) {
	if r.Ambiguous {
		d.Ambiguous++
		observability.AmbiguousIncludesTotal.Inc()
	}
	if r.Status == resolver.StatusUnresolvedLocal {
		d.UnresolvedLocal = append(d.UnresolvedLocal, r.Include)
		observability.UnresolvedIncludesTotal.Inc()
	}
}

func (d *Diagnostics) UnresolvedLocalCount() int {
	return len(d.UnresolvedLocal)
}
