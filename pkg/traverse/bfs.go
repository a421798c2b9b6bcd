package traverse

import (
	"sort"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

// Hop is one station on a path together with the line label of the edge used
// to reach it. The first hop of a path has an empty Line.
type Hop struct {
	Station string
	Line    string
}

// Path is a station sequence produced by BFS. Paths are shortest by
// construction: BFS dequeues stations in non-decreasing distance order.
type Path struct {
	Hops []Hop
}

// Stations returns the station names along the path in order.
func (p *Path) Stations() []string {
	names := make([]string, len(p.Hops))
	for i, h := range p.Hops {
		names[i] = h.Station
	}
	return names
}

// Len returns the number of edges on the path.
func (p *Path) Len() int {
	return len(p.Hops) - 1
}

// predecessor records how a station was first reached during BFS.
type predecessor struct {
	station string
	line    string
}

// ShortestPath runs a BFS from source and stops the first time any member of
// targets is dequeued, returning the path from source to that station. If
// source itself is a target the path is a single hop of length zero. Returns
// nil when no target is reachable. Edges pointing at stations absent from the
// graph are dead ends and are skipped.
func ShortestPath(g *graph.Graph, source string, targets map[string]bool) *Path {
	paths := bfsToTargets(g, source, targets, 1)
	if len(paths) == 0 {
		return nil
	}
	return paths[0]
}

// ShortestPathsToTargets runs a BFS from source until it has reached k
// distinct members of targets, returning their first-arrival paths sorted by
// length ascending. BFS layer order makes each path a true shortest path.
// Fewer than k paths are returned when fewer targets are reachable; callers
// must handle a short result.
func ShortestPathsToTargets(g *graph.Graph, source string, targets map[string]bool, k int) []*Path {
	if k < 1 {
		return nil
	}
	paths := bfsToTargets(g, source, targets, k)
	sort.SliceStable(paths, func(i, j int) bool {
		return len(paths[i].Hops) < len(paths[j].Hops)
	})
	return paths
}

func bfsToTargets(g *graph.Graph, source string, targets map[string]bool, k int) []*Path {
	if !g.Has(source) {
		return nil
	}

	prev := map[string]predecessor{source: {}}
	visited := map[string]bool{source: true}
	queue := []string{source}

	var found []*Path
	reached := make(map[string]bool)

	for len(queue) > 0 && len(found) < k {
		current := queue[0]
		queue = queue[1:]

		if targets[current] && !reached[current] {
			reached[current] = true
			found = append(found, reconstruct(current, prev))
			if len(found) == k {
				break
			}
		}

		for _, e := range g.Edges(current) {
			if visited[e.Station] || !g.Has(e.Station) {
				continue
			}
			visited[e.Station] = true
			prev[e.Station] = predecessor{station: current, line: e.Line}
			queue = append(queue, e.Station)
		}
	}

	return found
}

// reconstruct walks the predecessor map from end back to the BFS source.
// Each hop carries the line label of the edge it was first reached on; the
// source hop has no label.
func reconstruct(end string, prev map[string]predecessor) *Path {
	var hops []Hop
	for current := end; current != ""; {
		p := prev[current]
		hops = append(hops, Hop{Station: current, Line: p.line})
		current = p.station
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return &Path{Hops: hops}
}

// DistancesFrom runs a multi-source BFS seeded with every station in sources
// at distance zero and returns the distance from the nearest source for every
// reachable station. Sources absent from the graph are ignored.
func DistancesFrom(g *graph.Graph, sources []string) map[string]int {
	distances := make(map[string]int)
	var queue []string

	for _, s := range sources {
		if !g.Has(s) {
			continue
		}
		if _, seen := distances[s]; seen {
			continue
		}
		distances[s] = 0
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		d := distances[current]

		for _, e := range g.Edges(current) {
			if !g.Has(e.Station) {
				continue
			}
			if _, seen := distances[e.Station]; seen {
				continue
			}
			distances[e.Station] = d + 1
			queue = append(queue, e.Station)
		}
	}

	return distances
}
