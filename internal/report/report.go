package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"scar/internal/graph"
)

// Ranking is the assembler-side view of one computed metric: ordered
// (file, score) pairs plus the mode that produced them. The assembler owns
// no graph logic.
type Ranking struct {
	Mode    string // "topn" or "topn-impact"
	Entries []graph.Entry
}

// Summary carries the diagnostic counts displayed next to rankings.
type Summary struct {
	Root            string
	FileCount       int
	EdgeCount       int
	ComponentCount  int
	MultiFileCycles int
	UnresolvedLocal int
	Ambiguous       int
	UnreadableFiles int
	SelfIncludes    []string
	Duration        time.Duration
}

// RenderText produces the terminal report for the requested modes.
func RenderText(summary Summary, rankings []Ranking) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("Analyzed %d files, %d include edges in %v\n",
		summary.FileCount, summary.EdgeCount, summary.Duration.Round(time.Millisecond)))
	b.WriteString(fmt.Sprintf("Components: %d", summary.ComponentCount))
	if summary.MultiFileCycles > 0 {
		b.WriteString(fmt.Sprintf(" (%d include cycles)", summary.MultiFileCycles))
	}
	b.WriteString("\n")

	if summary.UnresolvedLocal > 0 {
		b.WriteString(fmt.Sprintf("Unresolved local includes: %d\n", summary.UnresolvedLocal))
	}
	if summary.Ambiguous > 0 {
		b.WriteString(fmt.Sprintf("Ambiguous includes: %d\n", summary.Ambiguous))
	}
	if summary.UnreadableFiles > 0 {
		b.WriteString(fmt.Sprintf("Unreadable files: %d\n", summary.UnreadableFiles))
	}
	for _, p := range summary.SelfIncludes {
		b.WriteString(fmt.Sprintf("Self-include: %s\n", displayPath(summary.Root, p)))
	}

	for _, r := range rankings {
		b.WriteString("\n")
		b.WriteString(modeTitle(r.Mode) + "\n")
		if len(r.Entries) == 0 {
			b.WriteString("  (no results)\n")
			continue
		}
		for i, e := range r.Entries {
			b.WriteString(fmt.Sprintf("  %3d. %-50s %d\n", i+1, displayPath(summary.Root, e.Path), e.Score))
		}
	}

	return b.String()
}

func modeTitle(mode string) string {
	switch mode {
	case "topn":
		return "Top included files (direct dependents):"
	case "topn-impact":
		return "Top impacting files (transitive):"
	default:
		return mode + ":"
	}
}

// displayPath shortens a canonical path to be root-relative when possible.
func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
