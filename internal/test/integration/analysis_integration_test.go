package integration

import (
	"os"
	"path/filepath"
	"testing"

	"scar/internal/analysis"
	"scar/internal/config"
	"scar/internal/graph"
	"scar/internal/scanner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	c, err := scanner.Canonicalize(path)
	require.NoError(t, err)
	return c
}

func scoresByBase(entries []graph.Entry) map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[filepath.Base(e.Path)] = e.Score
	}
	return m
}

// A small chain: a.h -> b.h -> c.h, plus a main.cpp pulling in a.h. The
// system header and the dangling quoted include exercise the diagnostic
// paths without failing the run.
func createChainProject(t *testing.T, root string) {
	writeSource(t, root, "main.cpp", `#include <vector>
#include "a.h"
#include "missing.h"

int main() { return 0; }
`)
	writeSource(t, root, "a.h", `#include "b.h"
`)
	writeSource(t, root, "b.h", `#include "c.h"
`)
	writeSource(t, root, "c.h", `// leaf
`)
}

func TestPipeline_ChainProject(t *testing.T) {
	root := t.TempDir()
	createChainProject(t, root)

	result, err := analysis.Run(root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 4, result.Graph.FileCount())
	assert.Equal(t, 3, result.Graph.EdgeCount(), "only in-project resolutions become edges")
	assert.Equal(t, 4, result.Condensation.ComponentCount())
	assert.Zero(t, result.Condensation.MultiFileCycles())

	// <vector> is external, silent; "missing.h" is a local diagnostic.
	assert.Equal(t, 1, result.Diagnostics.UnresolvedLocalCount())
	assert.Zero(t, result.Diagnostics.Ambiguous)
	assert.Zero(t, result.Diagnostics.UnreadableFiles)

	fanIn := scoresByBase(result.TopFanIn(10))
	assert.Equal(t, 1, fanIn["a.h"])
	assert.Equal(t, 1, fanIn["b.h"])
	assert.Equal(t, 1, fanIn["c.h"])
	assert.Equal(t, 0, fanIn["main.cpp"])

	impact := scoresByBase(result.TopImpact(10))
	assert.Equal(t, 3, impact["c.h"], "c.h change rebuilds b.h, a.h and main.cpp")
	assert.Equal(t, 2, impact["b.h"])
	assert.Equal(t, 1, impact["a.h"])
	assert.Equal(t, 0, impact["main.cpp"])
}

func TestPipeline_CycleProject(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "x.h", `#include "y.h"
`)
	writeSource(t, root, "y.h", `#include "x.h"
`)
	writeSource(t, root, "user.cpp", `#include "x.h"
`)

	result, err := analysis.Run(root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Graph.FileCount())
	assert.Equal(t, 2, result.Condensation.ComponentCount())
	assert.Equal(t, 1, result.Condensation.MultiFileCycles())

	xID := result.Condensation.ComponentOf[canonical(t, filepath.Join(root, "x.h"))]
	yID := result.Condensation.ComponentOf[canonical(t, filepath.Join(root, "y.h"))]
	assert.Equal(t, xID, yID, "cycle members share a component")

	impact := scoresByBase(result.TopImpact(10))
	assert.Equal(t, 1, impact["x.h"], "cycle members share the outside-dependent count")
	assert.Equal(t, 1, impact["y.h"])
	assert.Equal(t, 0, impact["user.cpp"])
}

func TestPipeline_IncludeRootsAndAmbiguity(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "main.cpp", `#include <config.h>
`)
	first := writeSource(t, root, "include/config.h", "// primary\n")
	writeSource(t, root, "vendor/config.h", "// shadowed\n")

	cfg := config.Default()
	cfg.IncludeRoots = []string{"include", "vendor"}

	result, err := analysis.Run(root, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Diagnostics.Ambiguous)
	assert.True(t, result.Graph.HasEdge(
		canonical(t, filepath.Join(root, "main.cpp")),
		canonical(t, first),
	), "first configured root wins")
}

func TestPipeline_EmptyProject(t *testing.T) {
	result, err := analysis.Run(t.TempDir(), config.Default())
	require.NoError(t, err)

	assert.True(t, result.Empty())
	assert.Zero(t, result.Condensation.ComponentCount())
	assert.Empty(t, result.TopFanIn(10))
	assert.Empty(t, result.TopImpact(10))
}

func TestPipeline_InvalidRoot(t *testing.T) {
	_, err := analysis.Run(filepath.Join(t.TempDir(), "does-not-exist"), config.Default())
	assert.Error(t, err)
}

func TestPipeline_Idempotent(t *testing.T) {
	root := t.TempDir()
	createChainProject(t, root)

	cfg := config.Default()
	first, err := analysis.Run(root, cfg)
	require.NoError(t, err)
	second, err := analysis.Run(root, cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Graph.Files(), second.Graph.Files())
	assert.Equal(t, first.Graph.EdgeCount(), second.Graph.EdgeCount())
	assert.Equal(t, first.TopFanIn(10), second.TopFanIn(10))
	assert.Equal(t, first.TopImpact(10), second.TopImpact(10))
}
