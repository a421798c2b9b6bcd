package graph

import "sort"

// Len returns the number of stations in the graph.
func (g *Graph) Len() int {
	return len(g.stations)
}

// Has reports whether the named station exists in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.stations[name]
	return ok
}

// Station returns the named station, or ok=false if it is absent.
func (g *Graph) Station(name string) (*Station, bool) {
	st, ok := g.stations[name]
	return st, ok
}

// Edges returns the outgoing edges of the named station. Unknown stations
// yield nil, which traversal treats as a dead end.
func (g *Graph) Edges(name string) []Edge {
	st, ok := g.stations[name]
	if !ok {
		return nil
	}
	return st.Edges
}

// Neighbors returns the distinct targets of the named station's outgoing
// edges. A pair of stations connected by several lines appears once.
func (g *Graph) Neighbors(name string) []string {
	edges := g.Edges(name)
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(edges))
	neighbors := make([]string, 0, len(edges))
	for _, e := range edges {
		if !seen[e.Station] {
			seen[e.Station] = true
			neighbors = append(neighbors, e.Station)
		}
	}
	return neighbors
}

// Adjacent reports whether from has an outgoing edge to to. Edges are
// directed; Adjacent(a, b) does not imply Adjacent(b, a).
func (g *Graph) Adjacent(from, to string) bool {
	for _, e := range g.Edges(from) {
		if e.Station == to {
			return true
		}
	}
	return false
}

// Linked reports whether a direct edge exists between a and b in either
// direction.
func (g *Graph) Linked(a, b string) bool {
	return g.Adjacent(a, b) || g.Adjacent(b, a)
}

// EdgeInto reports whether the named station has an outgoing edge into the
// given set.
func (g *Graph) EdgeInto(name string, set map[string]bool) bool {
	for _, e := range g.Edges(name) {
		if set[e.Station] {
			return true
		}
	}
	return false
}

// Names returns all station names in lexicographic order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.stations))
	for name := range g.stations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
