package resolver

import (
	"path/filepath"

	"scar/internal/parser"
)

type Status int

const (
	// StatusResolved maps the include to exactly one discovered file.
	StatusResolved Status = iota
	// StatusUnresolvedLocal is a quoted include matching no discovered
	// file; it becomes a diagnostic and no edge.
	StatusUnresolvedLocal
	// StatusExternal is an angle include matching no discovered file.
	// Expected for system headers, excluded from the graph and from
	// diagnostics.
	StatusExternal
)

type Resolution struct {
	Include parser.RawInclude
	Path    string
	Status  Status
	// Ambiguous records that more than one search root held a candidate;
	// the first root in the deterministic order won.
	Ambiguous bool
}

// Resolver maps raw include targets onto the discovered file set. It is
// built once after discovery and only reads immutable state afterward, so
// concurrent Resolve calls are safe.
type Resolver struct {
	files map[string]bool
	roots []string
}

// New builds a resolver over the canonical discovered set. Roots must be
// canonical and already in their fixed search order; the project root
// conventionally comes first, followed by configured include roots.
func New(files []string, roots []string) *Resolver {
	r := &Resolver{
		files: make(map[string]bool, len(files)),
	}
	for _, f := range files {
		r.files[f] = true
	}

	seen := make(map[string]bool, len(roots))
	for _, root := range roots {
		if !seen[root] {
			seen[root] = true
			r.roots = append(r.roots, root)
		}
	}
	return r
}

// Resolve applies the policy from the include form:
// quoted includes try the including file's own directory first, then each
// search root in order; angle includes skip the relative step. The first
// match in root order wins, further matches only mark ambiguity.
func (r *Resolver) Resolve(inc parser.RawInclude) Resolution {
	if inc.Form == parser.FormQuoted {
		if p := r.lookup(filepath.Dir(inc.File), inc.Target); p != "" {
			return Resolution{Include: inc, Path: p, Status: StatusResolved}
		}
	}

	var matches []string
	matched := make(map[string]bool)
	for _, root := range r.roots {
		if p := r.lookup(root, inc.Target); p != "" && !matched[p] {
			matched[p] = true
			matches = append(matches, p)
		}
	}

	if len(matches) > 0 {
		return Resolution{
			Include:   inc,
			Path:      matches[0],
			Status:    StatusResolved,
			Ambiguous: len(matches) > 1,
		}
	}

	if inc.Form == parser.FormAngle {
		return Resolution{Include: inc, Status: StatusExternal}
	}
	return Resolution{Include: inc, Status: StatusUnresolvedLocal}
}

func (r *Resolver) lookup(base, target string) string {
	candidate := filepath.Clean(filepath.Join(base, filepath.FromSlash(target)))
	if r.files[candidate] {
		return candidate
	}
	return ""
}
