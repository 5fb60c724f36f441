package graph

import (
	"testing"

	"scar/internal/parser"
)

func addFiles(g *Graph, paths ...string) {
	for _, p := range paths {
		g.AddFile(parser.NewSourceFile(p))
	}
}

func TestGraph_AddEdgeDeduplicates(t *testing.T) {
	g := NewGraph()
	addFiles(g, "/p/a.cpp", "/p/b.h")

	g.AddEdge("/p/a.cpp", "/p/b.h")
	g.AddEdge("/p/a.cpp", "/p/b.h")
	g.AddEdge("/p/a.cpp", "/p/b.h")

	if g.EdgeCount() != 1 {
		t.Errorf("repeated includes collapse to one edge, got %d", g.EdgeCount())
	}
	if g.InDegree("/p/b.h") != 1 {
		t.Errorf("duplicate includes count once for fan-in, got %d", g.InDegree("/p/b.h"))
	}
}

func TestGraph_AddEdgeUnknownEndpointIgnored(t *testing.T) {
	g := NewGraph()
	addFiles(g, "/p/a.cpp")

	g.AddEdge("/p/a.cpp", "/p/ghost.h")
	g.AddEdge("/p/ghost.h", "/p/a.cpp")

	if g.EdgeCount() != 0 {
		t.Errorf("edges to unknown nodes must not exist, got %d", g.EdgeCount())
	}
}

func TestGraph_SelfEdgeRetained(t *testing.T) {
	g := NewGraph()
	addFiles(g, "/p/weird.h")

	g.AddEdge("/p/weird.h", "/p/weird.h")

	if g.EdgeCount() != 1 {
		t.Fatalf("self-edge must be kept, got %d edges", g.EdgeCount())
	}
	self := g.SelfIncludes()
	if len(self) != 1 || self[0] != "/p/weird.h" {
		t.Errorf("expected self-include diagnostic, got %v", self)
	}
}

func TestGraph_DirectDependents(t *testing.T) {
	g := NewGraph()
	addFiles(g, "/p/a.cpp", "/p/b.cpp", "/p/common.h")

	g.AddEdge("/p/a.cpp", "/p/common.h")
	g.AddEdge("/p/b.cpp", "/p/common.h")

	deps := g.DirectDependents("/p/common.h")
	if len(deps) != 2 || deps[0] != "/p/a.cpp" || deps[1] != "/p/b.cpp" {
		t.Errorf("expected sorted dependents, got %v", deps)
	}
	if g.InDegree("/p/a.cpp") != 0 {
		t.Errorf("a.cpp has no dependents, got %d", g.InDegree("/p/a.cpp"))
	}
}

func TestGraph_FilesSorted(t *testing.T) {
	g := NewGraph()
	addFiles(g, "/p/z.h", "/p/a.h", "/p/m.h")

	files := g.Files()
	if len(files) != 3 || files[0] != "/p/a.h" || files[2] != "/p/z.h" {
		t.Errorf("expected sorted node list, got %v", files)
	}
}
