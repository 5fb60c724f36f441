package graph

import "sort"

// Entry is one ranked (file, score) pair.
type Entry struct {
	Path  string
	Score int
}

// TopFanIn ranks files by direct dependents: the in-degree of the
// original, non-condensed graph. Ties break by ascending path. Results
// truncate to n; n <= 0 yields an empty ranking.
func TopFanIn(g *Graph, n int) []Entry {
	entries := make([]Entry, 0, g.FileCount())
	for _, path := range g.Files() {
		entries = append(entries, Entry{Path: path, Score: g.InDegree(path)})
	}
	return truncate(sortEntries(entries), n)
}

// TopImpact ranks files by transitive impact: the number of distinct
// files that reach the file's component by following edges backward over
// the condensed DAG. Self-impact is excluded, so every file in a cycle
// shares the count of files outside its own component. Ties break by
// ascending path.
func TopImpact(g *Graph, c *Condensation, n int) []Entry {
	reverse := make(map[int][]int)
	for from, targets := range c.Edges {
		for to := range targets {
			reverse[to] = append(reverse[to], from)
		}
	}

	entries := make([]Entry, 0, g.FileCount())
	for id, comp := range c.Components {
		score := 0
		seen := map[int]bool{id: true}
		queue := []int{id}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, prev := range reverse[cur] {
				if seen[prev] {
					continue
				}
				seen[prev] = true
				score += len(c.Components[prev])
				queue = append(queue, prev)
			}
		}

		for _, path := range comp {
			entries = append(entries, Entry{Path: path, Score: score})
		}
	}

	return truncate(sortEntries(entries), n)
}

func sortEntries(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Path < entries[j].Path
	})
	return entries
}

func truncate(entries []Entry, n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
