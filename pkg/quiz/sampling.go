package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

// SelectNonAdjacent draws count distinct stations from pool such that no two
// drawn stations are connected by a direct edge in either direction. It
// redraws up to attempts times and returns ErrInsufficientCandidates when no
// acceptable draw is found within the budget; it never loops unboundedly.
// The second return value is the number of draws used.
func SelectNonAdjacent(g *graph.Graph, pool []string, count, attempts int, rng *rand.Rand) ([]string, int, error) {
	if len(pool) < count {
		return nil, 0, fmt.Errorf("%w: pool has %d stations, need %d", ErrInsufficientCandidates, len(pool), count)
	}

	candidates := make([]string, len(pool))
	copy(candidates, pool)

	for attempt := 1; attempt <= attempts; attempt++ {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		drawn := candidates[:count]

		if mutuallyNonAdjacent(g, drawn) {
			selected := make([]string, count)
			copy(selected, drawn)
			return selected, attempt, nil
		}
	}

	return nil, attempts, fmt.Errorf("%w: no non-adjacent set of %d found in %d attempts", ErrInsufficientCandidates, count, attempts)
}

func mutuallyNonAdjacent(g *graph.Graph, stations []string) bool {
	for i := 0; i < len(stations); i++ {
		for j := i + 1; j < len(stations); j++ {
			if g.Linked(stations[i], stations[j]) {
				return false
			}
		}
	}
	return true
}

// SelectDistractors samples up to count false-answer stations from pool.
// Stations in excluded (the start and answer sets) are always filtered out;
// stations adjacent to an excluded member are filtered out too, unless doing
// so leaves fewer than count candidates, in which case the adjacency filter
// is relaxed once. A short result is not an error — the caller may present a
// quiz with fewer distractors.
func SelectDistractors(g *graph.Graph, excluded []string, pool []string, count int, rng *rand.Rand) []string {
	excludedSet := make(map[string]bool, len(excluded))
	adjacentSet := make(map[string]bool)
	for _, station := range excluded {
		excludedSet[station] = true
		for _, e := range g.Edges(station) {
			adjacentSet[e.Station] = true
		}
	}

	candidates := filterPool(pool, func(s string) bool {
		return !excludedSet[s] && !adjacentSet[s]
	})
	if len(candidates) < count {
		candidates = filterPool(pool, func(s string) bool {
			return !excludedSet[s]
		})
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

// filterPool keeps stations passing the predicate, deduplicating on the way.
func filterPool(pool []string, keep func(string) bool) []string {
	seen := make(map[string]bool, len(pool))
	var out []string
	for _, s := range pool {
		if seen[s] || !keep(s) {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
