package traverse

import (
	"fmt"
	"sort"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

// terminalEdge is one edge of the metric closure: the shortest-path distance
// between two terminals, identified by their indices in the terminal slice.
type terminalEdge struct {
	weight int
	a, b   int
}

// MinimalConnectingSet computes an approximately minimal connected station
// set spanning all terminals, using the classical metric-closure MST
// 2-approximation to the minimum Steiner tree:
//
//  1. compute pairwise shortest paths between terminals,
//  2. build the complete weighted graph on the terminals from those
//     distances,
//  3. take a minimum spanning tree of it (Kruskal over a union-find),
//  4. union the original shortest paths behind the MST edges.
//
// The result is connected, contains every terminal, and its edge count is at
// most twice that of an optimal Steiner tree. Every terminal must exist in
// the graph and every terminal pair must be connected.
func MinimalConnectingSet(g *graph.Graph, terminals []string) (map[string]bool, error) {
	for _, t := range terminals {
		if !g.Has(t) {
			return nil, &LookupError{Op: "connecting set", Station: t}
		}
	}

	result := make(map[string]bool, len(terminals))
	if len(terminals) < 2 {
		for _, t := range terminals {
			result[t] = true
		}
		return result, nil
	}

	if len(terminals) == 2 {
		path := ShortestPath(g, terminals[0], map[string]bool{terminals[1]: true})
		if path == nil {
			return nil, fmt.Errorf("%w: %q and %q", ErrDisconnectedTerminals, terminals[0], terminals[1])
		}
		for _, name := range path.Stations() {
			result[name] = true
		}
		return result, nil
	}

	// Metric closure: shortest path for every unordered terminal pair.
	paths := make(map[[2]int]*Path)
	edges := make([]terminalEdge, 0, len(terminals)*(len(terminals)-1)/2)
	for i := 0; i < len(terminals); i++ {
		for j := i + 1; j < len(terminals); j++ {
			path := ShortestPath(g, terminals[i], map[string]bool{terminals[j]: true})
			if path == nil {
				return nil, fmt.Errorf("%w: %q and %q", ErrDisconnectedTerminals, terminals[i], terminals[j])
			}
			paths[[2]int{i, j}] = path
			edges = append(edges, terminalEdge{weight: path.Len(), a: i, b: j})
		}
	}

	// Kruskal: ascending weight, terminal order breaks ties.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].weight != edges[j].weight {
			return edges[i].weight < edges[j].weight
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})

	uf := newUnionFind(len(terminals))
	unions := 0
	for _, e := range edges {
		if !uf.union(e.a, e.b) {
			continue
		}
		for _, name := range paths[[2]int{e.a, e.b}].Stations() {
			result[name] = true
		}
		unions++
		if unions == len(terminals)-1 {
			break
		}
	}

	return result, nil
}
