package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance for edge documents.
var validate = validator.New()

// ErrEmptyGraph is returned when the document contains no stations.
var ErrEmptyGraph = errors.New("graph document contains no stations")

// FromJSON materialises a Graph from the serialized document produced by the
// graph-building pipeline: a JSON object mapping station name to
// {"lat": ..., "lon": ..., "edges": [{"station", "line", ...}, ...]}.
//
// Every edge is validated structurally (target and line label must be
// non-empty). Dangling edge targets and asymmetric edges are collected into
// the returned LoadReport rather than rejected or repaired; the source data
// is not fully trusted and the traversal layer tolerates both.
func FromJSON(data []byte) (*Graph, *LoadReport, error) {
	var doc map[string]*Station
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse graph document: %w", err)
	}
	if len(doc) == 0 {
		return nil, nil, ErrEmptyGraph
	}

	stations := make(map[string]*Station, len(doc))
	report := &LoadReport{Stations: len(doc)}

	for name, st := range doc {
		if st == nil {
			st = &Station{}
		}
		st.Name = name
		for i := range st.Edges {
			if err := validate.Struct(&st.Edges[i]); err != nil {
				return nil, nil, fmt.Errorf("station %q edge %d: %w", name, i, err)
			}
		}
		report.Edges += len(st.Edges)
		stations[name] = st
	}

	g := &Graph{stations: stations}
	inspect(g, report)
	return g, report, nil
}

// inspect fills the dangling- and asymmetric-edge findings of the report.
// An edge a->b is asymmetric when b exists but has no edge back to a on any
// line. The findings are sorted so reports are stable across loads.
func inspect(g *Graph, report *LoadReport) {
	for name, st := range g.stations {
		for _, e := range st.Edges {
			target, ok := g.stations[e.Station]
			if !ok {
				report.Dangling = append(report.Dangling, Link{From: name, To: e.Station})
				continue
			}
			if !hasEdgeTo(target, name) {
				report.Asymmetric = append(report.Asymmetric, Link{From: name, To: e.Station})
			}
		}
	}
	sortLinks(report.Dangling)
	sortLinks(report.Asymmetric)
}

func hasEdgeTo(st *Station, target string) bool {
	for _, e := range st.Edges {
		if e.Station == target {
			return true
		}
	}
	return false
}

func sortLinks(links []Link) {
	sort.Slice(links, func(i, j int) bool {
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}
		return links[i].To < links[j].To
	})
}
