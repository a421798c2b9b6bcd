package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the quiz-generation metrics. A nil *Registry is valid and
// records nothing, so library types can carry one without forcing metrics on
// every caller.
type Registry struct {
	QuizzesGeneratedTotal *prometheus.CounterVec
	GenerationDuration    *prometheus.HistogramVec
	ConnectingSetSize     prometheus.Histogram
	SamplingAttempts      prometheus.Histogram
	ReplayMismatchesTotal prometheus.Counter

	registry *prometheus.Registry
}

// New creates a Registry backed by its own prometheus registry.
func New() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.QuizzesGeneratedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizgen_quizzes_generated_total",
			Help: "Total number of quiz generation attempts by outcome",
		},
		[]string{"area", "status"},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quizgen_generation_duration_seconds",
			Help:    "Duration of a single quiz generation attempt",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"area"},
	)

	r.ConnectingSetSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizgen_connecting_set_stations",
			Help:    "Number of stations in the minimal connecting set",
			Buckets: []float64{5, 10, 15, 20, 30, 50, 80},
		},
	)

	r.SamplingAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizgen_sampling_attempts",
			Help:    "Draws needed to find a non-adjacent start set",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 500, 1000},
		},
	)

	r.ReplayMismatchesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "quizgen_replay_mismatches_total",
			Help: "Quiz records whose replayed statistic disagreed with the recorded one",
		},
	)

	return r
}

// Gatherer exposes the underlying registry for scrape handlers.
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// ObserveGeneration records one generation attempt.
func (r *Registry) ObserveGeneration(area, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.QuizzesGeneratedTotal.WithLabelValues(area, status).Inc()
	r.GenerationDuration.WithLabelValues(area).Observe(elapsed.Seconds())
}

// ObserveConnectingSet records the size of a computed connecting set.
func (r *Registry) ObserveConnectingSet(stations int) {
	if r == nil {
		return
	}
	r.ConnectingSetSize.Observe(float64(stations))
}

// ObserveSamplingAttempts records how many draws a start-set sample took.
func (r *Registry) ObserveSamplingAttempts(attempts int) {
	if r == nil {
		return
	}
	r.SamplingAttempts.Observe(float64(attempts))
}

// ObserveReplayMismatch records a validation mismatch.
func (r *Registry) ObserveReplayMismatch() {
	if r == nil {
		return
	}
	r.ReplayMismatchesTotal.Inc()
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the process-wide Registry.
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}
