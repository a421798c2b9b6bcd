package traverse

import "github.com/ekitsunagi/quizgen/pkg/graph"

// CountComponents returns the number of connected components of the induced
// subgraph on subset: an edge counts only when both endpoints are subset
// members. The count is the number of BFS launches needed to cover the
// subset, so on symmetric edge data it is invariant under any permutation of
// subset. Subset members absent from the graph are skipped.
func CountComponents(g *graph.Graph, subset []string) int {
	members := make(map[string]bool, len(subset))
	for _, s := range subset {
		members[s] = true
	}

	visited := make(map[string]bool, len(subset))
	components := 0

	for _, start := range subset {
		if visited[start] || !g.Has(start) {
			continue
		}
		components++

		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, e := range g.Edges(current) {
				if members[e.Station] && !visited[e.Station] {
					visited[e.Station] = true
					queue = append(queue, e.Station)
				}
			}
		}
	}

	return components
}
