package graph

import (
	"sort"
	"sync"

	"scar/internal/parser"
)

// Graph is the file-level dependency graph: nodes are canonical paths,
// edges mean "from includes to". The edge set deduplicates repeated
// includes of the same target; self-edges are kept as degenerate cycles.
// It is assembled once per run and read-only afterward.
type Graph struct {
	mu sync.RWMutex

	files      map[string]*parser.SourceFile
	includes   map[string]map[string]bool // from -> to
	includedBy map[string]map[string]bool // to -> from
	edgeCount  int
}

func NewGraph() *Graph {
	return &Graph{
		files:      make(map[string]*parser.SourceFile),
		includes:   make(map[string]map[string]bool),
		includedBy: make(map[string]map[string]bool),
	}
}

func (g *Graph) AddFile(file *parser.SourceFile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.files[file.Path]; !ok {
		g.files[file.Path] = file
	}
}

// AddEdge records "from includes to". Both endpoints must already be
// nodes; unknown endpoints are ignored so the edge invariant holds.
func (g *Graph) AddEdge(from, to string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.files[from]; !ok {
		return
	}
	if _, ok := g.files[to]; !ok {
		return
	}
	if g.includes[from] == nil {
		g.includes[from] = make(map[string]bool)
	}
	if g.includes[from][to] {
		return
	}
	g.includes[from][to] = true

	if g.includedBy[to] == nil {
		g.includedBy[to] = make(map[string]bool)
	}
	g.includedBy[to][from] = true
	g.edgeCount++
}

func (g *Graph) Files() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	paths := make([]string, 0, len(g.files))
	for p := range g.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (g *Graph) GetFile(path string) (*parser.SourceFile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.files[path]
	return f, ok
}

func (g *Graph) FileCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.files)
}

func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// InDegree is the number of distinct files directly including path, each
// counted once no matter how many times it repeats the include.
func (g *Graph) InDegree(path string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.includedBy[path])
}

func (g *Graph) DirectDependents(path string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deps := make([]string, 0, len(g.includedBy[path]))
	for from := range g.includedBy[path] {
		deps = append(deps, from)
	}
	sort.Strings(deps)
	return deps
}

// Includes returns the sorted adjacency list for one file.
func (g *Graph) Includes(path string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	targets := make([]string, 0, len(g.includes[path]))
	for to := range g.includes[path] {
		targets = append(targets, to)
	}
	sort.Strings(targets)
	return targets
}

func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.includes[from][to]
}

// SelfIncludes lists files carrying a direct self-edge. Pathological but
// legal input; they surface in diagnostics instead of disappearing.
func (g *Graph) SelfIncludes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var paths []string
	for p := range g.files {
		if g.includes[p][p] {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
