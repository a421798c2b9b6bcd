package quiz

import (
	"math/rand/v2"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

// OrderAnswers fixes the reveal order of the answer stations. Starting from
// the revealed set (the start stations), it repeatedly prefers an answer with
// no edge into the revealed set, picking uniformly at random within the
// preferred group, and falls back to a uniform pick among the adjacent ones
// when every remaining answer already touches the revealed set.
//
// Revealing unconnected stations first maximises the number of transient
// connected components the player sees, which is what makes the puzzle tense.
// One answer is consumed per iteration, so the result is a permutation of
// answers produced in exactly len(answers) steps.
func OrderAnswers(g *graph.Graph, start []string, answers []string, rng *rand.Rand) []string {
	remaining := make([]string, len(answers))
	copy(remaining, answers)

	revealed := make(map[string]bool, len(start)+len(answers))
	for _, s := range start {
		revealed[s] = true
	}

	ordered := make([]string, 0, len(answers))
	for len(remaining) > 0 {
		var adjacent, unconnected []string
		for _, station := range remaining {
			if g.EdgeInto(station, revealed) {
				adjacent = append(adjacent, station)
			} else {
				unconnected = append(unconnected, station)
			}
		}

		pool := unconnected
		if len(pool) == 0 {
			pool = adjacent
		}
		pick := pool[rng.IntN(len(pool))]

		ordered = append(ordered, pick)
		revealed[pick] = true
		remaining = remove(remaining, pick)
	}

	return ordered
}

func remove(stations []string, name string) []string {
	for i, s := range stations {
		if s == name {
			return append(stations[:i], stations[i+1:]...)
		}
	}
	return stations
}
