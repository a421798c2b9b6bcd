package quiz

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ekitsunagi/quizgen/pkg/graph"
	"github.com/ekitsunagi/quizgen/pkg/logging"
	"github.com/ekitsunagi/quizgen/pkg/metrics"
	"github.com/ekitsunagi/quizgen/pkg/traverse"
)

// Generator builds quizzes over a shared read-only graph. A Generator is not
// safe for concurrent use because of its random source; give each worker its
// own Generator over the same Graph.
type Generator struct {
	graph   *graph.Graph
	opts    Options
	rng     *rand.Rand
	log     logging.Logger
	metrics *metrics.Registry
}

// NewGenerator creates a Generator. A nil rng gets a freshly seeded PCG
// source. Logger and metrics default to no-ops; override them with
// SetLogger / SetMetrics.
func NewGenerator(g *graph.Graph, opts Options, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		graph: g,
		opts:  opts.withDefaults(),
		rng:   rng,
		log:   logging.NewNopLogger(),
	}
}

// SetLogger replaces the generator's logger.
func (gen *Generator) SetLogger(log logging.Logger) {
	gen.log = log
}

// SetMetrics attaches a metrics registry. A nil registry records nothing.
func (gen *Generator) SetMetrics(reg *metrics.Registry) {
	gen.metrics = reg
}

// Generate builds one quiz for the named area from its goal candidate pool:
// it samples a mutually non-adjacent start set, computes the minimal
// connecting set over it, schedules the reveal order of the remaining answer
// stations, samples distractors, interleaves everything into a presentation
// sequence and records the max-connected-components statistic of the
// scheduled progression.
//
// Failures are typed and abort only this attempt: retrying a whole quiz is
// the caller's call.
func (gen *Generator) Generate(area string, goalPool []string) (*Quiz, error) {
	started := time.Now()
	q, err := gen.generate(area, goalPool)
	if err != nil {
		gen.metrics.ObserveGeneration(area, "failure", time.Since(started))
		gen.log.Warn("quiz generation failed", logging.Area(area), logging.Error(err))
		return nil, err
	}
	gen.metrics.ObserveGeneration(area, "success", time.Since(started))
	gen.log.Info("quiz generated",
		logging.Area(area),
		logging.QuizID(q.ID),
		logging.Int("answers", len(q.Answers())),
		logging.Int("max_components", q.MaxConnectedComponents),
		logging.Latency(time.Since(started)))
	return q, nil
}

func (gen *Generator) generate(area string, goalPool []string) (*Quiz, error) {
	pool := dedupe(goalPool)
	if len(pool) < gen.opts.StartCount {
		return nil, fmt.Errorf("%w: area %q has %d unique goal stations, need %d",
			ErrInsufficientCandidates, area, len(pool), gen.opts.StartCount)
	}

	starts, attempts, err := SelectNonAdjacent(gen.graph, pool, gen.opts.StartCount, gen.opts.SampleAttempts, gen.rng)
	if err != nil {
		return nil, err
	}
	gen.metrics.ObserveSamplingAttempts(attempts)

	connected, err := traverse.MinimalConnectingSet(gen.graph, starts)
	if err != nil {
		return nil, err
	}
	gen.metrics.ObserveConnectingSet(len(connected))

	answers := subtract(connected, starts)
	ordered := OrderAnswers(gen.graph, starts, answers, gen.rng)

	excluded := make([]string, 0, len(starts)+len(ordered))
	excluded = append(excluded, starts...)
	excluded = append(excluded, ordered...)
	distractors := SelectDistractors(gen.graph, excluded, pool, gen.opts.DistractorCount, gen.rng)

	maxComponents, _ := progression(gen.graph, starts, ordered)

	return &Quiz{
		ID:                     uuid.NewString(),
		Area:                   area,
		StartStations:          starts,
		Questions:              interleave(ordered, distractors, gen.rng),
		MaxConnectedComponents: maxComponents,
	}, nil
}

// interleave mixes the ordered answers and the distractors into one
// presentation sequence: shuffle all entries together, then write the
// answers back into the answer-occupied slots in scheduler order. Distractor
// positions stay where the shuffle put them; only the relative order among
// correct entries is restored.
func interleave(ordered, distractors []string, rng *rand.Rand) []Question {
	questions := make([]Question, 0, len(ordered)+len(distractors))
	for _, station := range ordered {
		questions = append(questions, Question{Station: station, IsCorrect: true})
	}
	for _, station := range distractors {
		questions = append(questions, Question{Station: station, IsCorrect: false})
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	next := 0
	for i := range questions {
		if questions[i].IsCorrect {
			questions[i].Station = ordered[next]
			next++
		}
	}
	return questions
}

// progression replays the scheduled reveal over the start set and returns
// the running maximum of connected components along with the per-step counts
// (index 0 is the start set alone).
func progression(g *graph.Graph, start, ordered []string) (int, []int) {
	current := make([]string, len(start), len(start)+len(ordered))
	copy(current, start)

	counts := make([]int, 0, len(ordered)+1)
	maxComponents := traverse.CountComponents(g, current)
	counts = append(counts, maxComponents)

	for _, station := range ordered {
		current = append(current, station)
		c := traverse.CountComponents(g, current)
		counts = append(counts, c)
		if c > maxComponents {
			maxComponents = c
		}
	}
	return maxComponents, counts
}

// dedupe drops duplicates from pool, keeping first occurrences in order.
func dedupe(pool []string) []string {
	seen := make(map[string]bool, len(pool))
	out := make([]string, 0, len(pool))
	for _, s := range pool {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// subtract returns set minus members, sorted for a deterministic scheduler
// input under a fixed random seed.
func subtract(set map[string]bool, members []string) []string {
	excluded := make(map[string]bool, len(members))
	for _, m := range members {
		excluded[m] = true
	}
	out := make([]string, 0, len(set))
	for s := range set {
		if !excluded[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
