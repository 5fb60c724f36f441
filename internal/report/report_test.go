package report

import (
	"strings"
	"testing"
	"time"

	"scar/internal/graph"
	"scar/internal/parser"
)

func sampleSummary() Summary {
	return Summary{
		Root:            "/proj",
		FileCount:       3,
		EdgeCount:       2,
		ComponentCount:  3,
		UnresolvedLocal: 1,
		Duration:        120 * time.Millisecond,
	}
}

func sampleRankings() []Ranking {
	return []Ranking{
		{
			Mode: "topn",
			Entries: []graph.Entry{
				{Path: "/proj/b.h", Score: 1},
				{Path: "/proj/c.h", Score: 1},
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleSummary(), sampleRankings())

	if !strings.Contains(out, "Analyzed 3 files, 2 include edges") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "Top included files (direct dependents):") {
		t.Errorf("missing mode title:\n%s", out)
	}
	if !strings.Contains(out, "Unresolved local includes: 1") {
		t.Errorf("missing diagnostic line:\n%s", out)
	}
	// Paths under the root render relative to it.
	if !strings.Contains(out, "b.h") || strings.Contains(out, "/proj/b.h") {
		t.Errorf("expected root-relative paths:\n%s", out)
	}
	// Zero-count diagnostics stay silent.
	if strings.Contains(out, "Ambiguous") || strings.Contains(out, "Unreadable") {
		t.Errorf("zero diagnostics must not render:\n%s", out)
	}
}

func TestRenderText_EmptyRanking(t *testing.T) {
	rankings := []Ranking{{Mode: "topn-impact"}}
	out := RenderText(sampleSummary(), rankings)

	if !strings.Contains(out, "Top impacting files (transitive):") {
		t.Errorf("missing impact title:\n%s", out)
	}
	if !strings.Contains(out, "(no results)") {
		t.Errorf("empty ranking must say so:\n%s", out)
	}
}

func TestRenderText_SelfIncludes(t *testing.T) {
	s := sampleSummary()
	s.SelfIncludes = []string{"/proj/weird.h"}

	out := RenderText(s, nil)
	if !strings.Contains(out, "Self-include: weird.h") {
		t.Errorf("missing self-include line:\n%s", out)
	}
}

func TestTSVGenerator(t *testing.T) {
	gen := NewTSVGenerator(sampleRankings())
	out, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Mode\tRank\tFile\tScore" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[1] != "topn\t1\t/proj/b.h\t1" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestDOTGenerator(t *testing.T) {
	g := graph.NewGraph()
	for _, p := range []string{"/proj/x.h", "/proj/y.h", "/proj/z.cpp"} {
		g.AddFile(parser.NewSourceFile(p))
	}
	g.AddEdge("/proj/x.h", "/proj/y.h")
	g.AddEdge("/proj/y.h", "/proj/x.h")
	g.AddEdge("/proj/z.cpp", "/proj/x.h")

	gen := NewDOTGenerator(g, graph.Condense(g))
	out, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "digraph includes {") {
		t.Errorf("unexpected preamble:\n%s", out)
	}
	if !strings.Contains(out, "cycle (2 files)") {
		t.Errorf("cycle component must be labeled:\n%s", out)
	}
	if !strings.Contains(out, "mistyrose") {
		t.Errorf("cycle component must be highlighted:\n%s", out)
	}
	if strings.Count(out, " -> ") != 1 {
		t.Errorf("expected exactly one condensed edge:\n%s", out)
	}
}

func TestDOTGenerator_SelfInclude(t *testing.T) {
	g := graph.NewGraph()
	g.AddFile(parser.NewSourceFile("/proj/weird.h"))
	g.AddEdge("/proj/weird.h", "/proj/weird.h")

	gen := NewDOTGenerator(g, graph.Condense(g))
	out, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "(self-include)") {
		t.Errorf("self-include node must be marked:\n%s", out)
	}
}

func TestDisplayPath_OutsideRoot(t *testing.T) {
	if got := displayPath("/proj", "/other/file.h"); got != "/other/file.h" {
		t.Errorf("paths outside the root stay absolute, got %q", got)
	}
	if got := displayPath("", "/file.h"); got != "/file.h" {
		t.Errorf("empty root keeps the path, got %q", got)
	}
}
