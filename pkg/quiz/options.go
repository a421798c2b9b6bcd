package quiz

// Options tunes quiz generation. Zero values are replaced by the defaults
// from DefaultOptions at construction time.
type Options struct {
	// StartCount is the number of start stations sampled per quiz.
	StartCount int
	// DistractorCount is the number of false answers requested per quiz.
	// Fewer may be produced when the candidate pool is small.
	DistractorCount int
	// SampleAttempts bounds the random draws when searching for a mutually
	// non-adjacent start set. The bound is a tunable, not an algorithmic
	// requirement; exhausting it yields ErrInsufficientCandidates.
	SampleAttempts int
}

// DefaultOptions returns the production settings: three start stations, five
// distractors, a thousand sampling attempts.
func DefaultOptions() Options {
	return Options{
		StartCount:      3,
		DistractorCount: 5,
		SampleAttempts:  1000,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.StartCount <= 0 {
		o.StartCount = def.StartCount
	}
	if o.DistractorCount <= 0 {
		o.DistractorCount = def.DistractorCount
	}
	if o.SampleAttempts <= 0 {
		o.SampleAttempts = def.SampleAttempts
	}
	return o
}
