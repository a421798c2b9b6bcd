// Package batch runs many independent quiz generation attempts over a shared
// graph. Attempts never mutate the graph, so areas are processed on parallel
// workers with no locking; each task gets its own random source.
package batch

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/ekitsunagi/quizgen/pkg/area"
	"github.com/ekitsunagi/quizgen/pkg/graph"
	"github.com/ekitsunagi/quizgen/pkg/logging"
	"github.com/ekitsunagi/quizgen/pkg/metrics"
	"github.com/ekitsunagi/quizgen/pkg/quiz"
)

// Config tunes a batch run.
type Config struct {
	// Workers is the number of concurrent area tasks. Defaults to GOMAXPROCS.
	Workers int
	// PerArea is the number of quizzes requested per area.
	PerArea int
	// MinMaxComponents rejects quizzes whose max-connected-components
	// statistic falls below it; such quizzes are too easy to be interesting.
	// Zero disables the threshold.
	MinMaxComponents int
	// AttemptsPerQuiz bounds the regeneration attempts for one accepted
	// quiz, covering both typed generation failures and threshold rejects.
	AttemptsPerQuiz int
	// Seed makes a run reproducible. Zero seeds from the global source.
	Seed uint64
	// Options is passed through to every Generator.
	Options quiz.Options
}

// DefaultConfig returns the production batch settings.
func DefaultConfig() Config {
	return Config{
		Workers:          runtime.GOMAXPROCS(0),
		PerArea:          10,
		MinMaxComponents: 4,
		AttemptsPerQuiz:  5,
		Options:          quiz.DefaultOptions(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.PerArea <= 0 {
		c.PerArea = def.PerArea
	}
	if c.AttemptsPerQuiz <= 0 {
		c.AttemptsPerQuiz = def.AttemptsPerQuiz
	}
	if c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	return c
}

// Range summarises the spread of the max-components statistic in one area.
type Range struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

// AreaResult is the per-area outcome of a batch run.
type AreaResult struct {
	Success            bool   `json:"success"`
	Count              int    `json:"count"`
	Error              string `json:"error,omitempty"`
	MaxComponentsRange *Range `json:"max_components_range,omitempty"`
}

// Summary is the serializable batch report persisted next to the quizzes.
type Summary struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	TotalAreas      int                   `json:"total_areas"`
	SuccessfulAreas int                   `json:"successful_areas"`
	FailedAreas     int                   `json:"failed_areas"`
	TotalQuizzes    int                   `json:"total_quizzes"`
	Areas           map[string]AreaResult `json:"areas"`
}

// Result bundles the generated quizzes with the run summary.
type Result struct {
	Quizzes map[string][]*quiz.Quiz
	Summary *Summary
}

// Runner executes batch runs over one graph.
type Runner struct {
	graph   *graph.Graph
	cfg     Config
	log     logging.Logger
	metrics *metrics.Registry
}

// NewRunner creates a Runner. A nil logger is replaced with a no-op one.
func NewRunner(g *graph.Graph, cfg Config, log logging.Logger) *Runner {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Runner{graph: g, cfg: cfg.withDefaults(), log: log}
}

// SetMetrics attaches a metrics registry shared by all workers.
func (r *Runner) SetMetrics(reg *metrics.Registry) {
	r.metrics = reg
}

// Run generates quizzes for every area and returns them with a summary. An
// area that produces no quiz at all is reported as failed; the run itself
// never fails — per-attempt errors are logged and counted.
func (r *Runner) Run(areas area.Areas) *Result {
	result := &Result{
		Quizzes: make(map[string][]*quiz.Quiz, len(areas)),
		Summary: &Summary{
			GeneratedAt: time.Now(),
			TotalAreas:  len(areas),
			Areas:       make(map[string]AreaResult, len(areas)),
		},
	}

	var mu sync.Mutex
	workers := newPool(r.cfg.Workers, r.log)

	for i, name := range areas.Names() {
		name := name
		pools := areas[name]
		// Distinct PCG stream per area task keeps workers independent and
		// the whole run reproducible for a fixed Seed.
		rng := rand.New(rand.NewPCG(r.cfg.Seed, uint64(i)))

		workers.submit(func() {
			quizzes, areaResult := r.runArea(name, pools, rng)
			mu.Lock()
			defer mu.Unlock()
			result.Quizzes[name] = quizzes
			result.Summary.Areas[name] = areaResult
		})
	}
	workers.wait()

	for _, areaResult := range result.Summary.Areas {
		if areaResult.Success {
			result.Summary.SuccessfulAreas++
		} else {
			result.Summary.FailedAreas++
		}
		result.Summary.TotalQuizzes += areaResult.Count
	}

	r.log.Info("batch run finished",
		logging.Int("areas", result.Summary.TotalAreas),
		logging.Int("failed_areas", result.Summary.FailedAreas),
		logging.Int("quizzes", result.Summary.TotalQuizzes))
	return result
}

func (r *Runner) runArea(name string, pools area.Pools, rng *rand.Rand) ([]*quiz.Quiz, AreaResult) {
	gen := quiz.NewGenerator(r.graph, r.cfg.Options, rng)
	gen.SetLogger(r.log.With(logging.Area(name)))
	gen.SetMetrics(r.metrics)

	goals := pools.UniqueGoals()
	quizzes := make([]*quiz.Quiz, 0, r.cfg.PerArea)
	var lastErr error

	for n := 0; n < r.cfg.PerArea; n++ {
		q, err := r.acceptableQuiz(gen, name, goals)
		if err != nil {
			lastErr = err
			continue
		}
		quizzes = append(quizzes, q)
	}

	areaResult := AreaResult{Success: len(quizzes) > 0, Count: len(quizzes)}
	if len(quizzes) == 0 && lastErr != nil {
		areaResult.Error = lastErr.Error()
	}
	if len(quizzes) > 0 {
		areaResult.MaxComponentsRange = componentsRange(quizzes)
	}
	return quizzes, areaResult
}

// acceptableQuiz generates until a quiz passes the quality threshold and the
// replay check, within the per-quiz attempt budget.
func (r *Runner) acceptableQuiz(gen *quiz.Generator, name string, goals []string) (*quiz.Quiz, error) {
	var lastErr error
	for attempt := 0; attempt < r.cfg.AttemptsPerQuiz; attempt++ {
		q, err := gen.Generate(name, goals)
		if err != nil {
			lastErr = err
			continue
		}
		if q.MaxConnectedComponents < r.cfg.MinMaxComponents {
			lastErr = fmt.Errorf("quiz below quality threshold: max components %d < %d",
				q.MaxConnectedComponents, r.cfg.MinMaxComponents)
			continue
		}
		if err := quiz.Verify(r.graph, q); err != nil {
			r.metrics.ObserveReplayMismatch()
			r.log.Error("generated quiz failed replay", logging.Area(name), logging.QuizID(q.ID), logging.Error(err))
			lastErr = err
			continue
		}
		return q, nil
	}
	return nil, lastErr
}

func componentsRange(quizzes []*quiz.Quiz) *Range {
	rg := &Range{Min: quizzes[0].MaxConnectedComponents, Max: quizzes[0].MaxConnectedComponents}
	sum := 0
	for _, q := range quizzes {
		c := q.MaxConnectedComponents
		sum += c
		if c < rg.Min {
			rg.Min = c
		}
		if c > rg.Max {
			rg.Max = c
		}
	}
	rg.Avg = float64(sum) / float64(len(quizzes))
	return rg
}
