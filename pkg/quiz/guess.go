package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/ekitsunagi/quizgen/pkg/graph"
	"github.com/ekitsunagi/quizgen/pkg/traverse"
)

// GuessOptions tunes guess-problem generation: pick StartCount start
// stations whose BFS distance from the goal lies inside [MinDistance,
// MaxDistance].
type GuessOptions struct {
	MinDistance int
	MaxDistance int
	StartCount  int
}

// DefaultGuessOptions returns the production distance band of 4 to 12
// stations and three starts per problem.
func DefaultGuessOptions() GuessOptions {
	return GuessOptions{MinDistance: 4, MaxDistance: 12, StartCount: 3}
}

// GuessProblem asks the player to guess the goal station given start
// stations at known distances from it.
type GuessProblem struct {
	GoalStation   string   `json:"goal_station"`
	StartStations []string `json:"start_stations"`
	Distances     []int    `json:"distances"`
}

// GenerateGuessProblem builds one guess problem for a goal station: it
// computes BFS distances from the goal to every station, keeps the start
// candidates inside the configured band and samples the requested number of
// distinct starts. Goals absent from the graph or bands with too few
// candidates yield ErrInsufficientCandidates.
func GenerateGuessProblem(g *graph.Graph, goal string, startPool []string, opts GuessOptions, rng *rand.Rand) (*GuessProblem, error) {
	if !g.Has(goal) {
		return nil, &traverse.LookupError{Op: "guess problem", Station: goal}
	}

	distances := traverse.DistancesFrom(g, []string{goal})

	var inBand []string
	for _, start := range dedupe(startPool) {
		d, reachable := distances[start]
		if reachable && d >= opts.MinDistance && d <= opts.MaxDistance {
			inBand = append(inBand, start)
		}
	}
	if len(inBand) < opts.StartCount {
		return nil, fmt.Errorf("%w: %d start stations within %d-%d of %q, need %d",
			ErrInsufficientCandidates, len(inBand), opts.MinDistance, opts.MaxDistance, goal, opts.StartCount)
	}

	rng.Shuffle(len(inBand), func(i, j int) {
		inBand[i], inBand[j] = inBand[j], inBand[i]
	})
	starts := make([]string, opts.StartCount)
	copy(starts, inBand[:opts.StartCount])

	selected := make([]int, opts.StartCount)
	for i, s := range starts {
		selected[i] = distances[s]
	}

	return &GuessProblem{
		GoalStation:   goal,
		StartStations: starts,
		Distances:     selected,
	}, nil
}
