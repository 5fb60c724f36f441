package graph

import "sort"

// Condensation is the read-only SCC view of a Graph. Components partition
// the node set and the edges between components always form a DAG, which
// is what makes transitive impact finite on cyclic input.
type Condensation struct {
	ComponentOf map[string]int
	Components  [][]string         // member paths, sorted
	Edges       map[int]map[int]bool // condensed DAG, intra-component edges dropped
}

// Condense runs Tarjan's algorithm over the graph. Nodes and adjacency are
// visited in sorted order so component numbering is deterministic.
func Condense(g *Graph) *Condensation {
	nodes := g.Files()
	adjacency := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		adjacency[n] = g.Includes(n)
	}

	componentOf, components := stronglyConnectedComponents(nodes, adjacency)

	edges := make(map[int]map[int]bool)
	for _, from := range nodes {
		fromComp := componentOf[from]
		for _, to := range adjacency[from] {
			toComp := componentOf[to]
			if fromComp == toComp {
				continue
			}
			if edges[fromComp] == nil {
				edges[fromComp] = make(map[int]bool)
			}
			edges[fromComp][toComp] = true
		}
	}

	return &Condensation{
		ComponentOf: componentOf,
		Components:  components,
		Edges:       edges,
	}
}

func (c *Condensation) ComponentCount() int {
	return len(c.Components)
}

// MultiFileCycles counts components holding two or more files. A single
// file with a self-edge is not a multi-file cycle; it is reported through
// Graph.SelfIncludes.
func (c *Condensation) MultiFileCycles() int {
	count := 0
	for _, comp := range c.Components {
		if len(comp) >= 2 {
			count++
		}
	}
	return count
}

// Component returns the sorted member files of the component containing
// path, or nil when the path is not a node.
func (c *Condensation) Component(path string) []string {
	id, ok := c.ComponentOf[path]
	if !ok {
		return nil
	}
	return c.Components[id]
}

func stronglyConnectedComponents(nodes []string, adjacency map[string][]string) (map[string]int, [][]string) {
	index := 0
	stack := make([]string, 0, len(nodes))
	onStack := make(map[string]bool, len(nodes))
	indexByNode := make(map[string]int, len(nodes))
	lowLink := make(map[string]int, len(nodes))
	componentOf := make(map[string]int, len(nodes))
	components := make([][]string, 0)

	var strongConnect func(string)
	strongConnect = func(v string) {
		indexByNode[v] = index
		lowLink[v] = index
		index++

		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adjacency[v] {
			if _, seen := indexByNode[w]; !seen {
				strongConnect(w)
				if lowLink[w] < lowLink[v] {
					lowLink[v] = lowLink[w]
				}
			} else if onStack[w] && indexByNode[w] < lowLink[v] {
				lowLink[v] = indexByNode[w]
			}
		}

		if lowLink[v] != indexByNode[v] {
			return
		}

		component := make([]string, 0)
		for {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[last] = false
			component = append(component, last)
			if last == v {
				break
			}
		}
		sort.Strings(component)
		compID := len(components)
		components = append(components, component)
		for _, n := range component {
			componentOf[n] = compID
		}
	}

	for _, node := range nodes {
		if _, seen := indexByNode[node]; !seen {
			strongConnect(node)
		}
	}

	return componentOf, components
}
