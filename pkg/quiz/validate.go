package quiz

import (
	"fmt"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

// ProgressionStep is one state of a replayed quiz: the station added at this
// step (empty for step 0) and the component count of the visited set after
// adding it.
type ProgressionStep struct {
	Step       int    `json:"step"`
	Added      string `json:"added_station,omitempty"`
	Components int    `json:"connected_components"`
}

// ReplayResult is the outcome of independently re-deriving a quiz record's
// headline statistic.
type ReplayResult struct {
	MaxConnectedComponents int               `json:"max_connected_components"`
	Match                  bool              `json:"match"`
	Steps                  []ProgressionStep `json:"progression"`
}

// Replay re-runs the component progression of a persisted quiz record: start
// set first, then each correct question in presentation order, counting
// connected components after every addition. It is a regression oracle over
// generation, deliberately independent of the generation call path — it
// consumes only the record and the graph.
func Replay(g *graph.Graph, q *Quiz) *ReplayResult {
	ordered := q.Answers()
	maxComponents, counts := progression(g, q.StartStations, ordered)

	steps := make([]ProgressionStep, len(counts))
	for i, c := range counts {
		step := ProgressionStep{Step: i, Components: c}
		if i > 0 {
			step.Added = ordered[i-1]
		}
		steps[i] = step
	}

	return &ReplayResult{
		MaxConnectedComponents: maxComponents,
		Match:                  maxComponents == q.MaxConnectedComponents,
		Steps:                  steps,
	}
}

// Verify replays the quiz and returns ErrValidationMismatch when the
// recomputed statistic disagrees with the recorded one.
func Verify(g *graph.Graph, q *Quiz) error {
	result := Replay(g, q)
	if !result.Match {
		return fmt.Errorf("%w: recorded %d, replayed %d",
			ErrValidationMismatch, q.MaxConnectedComponents, result.MaxConnectedComponents)
	}
	return nil
}
