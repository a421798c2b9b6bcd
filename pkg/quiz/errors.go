package quiz

import "errors"

// Sentinel errors for quiz generation and validation. All of them abort only
// the current attempt; a batch driver treats them as a failed quiz and moves
// on to the next one.
var (
	// ErrInsufficientCandidates indicates a sampling step exhausted its retry
	// budget or its candidate pool.
	ErrInsufficientCandidates = errors.New("not enough candidate stations")
	// ErrValidationMismatch indicates a replayed quiz record disagrees with
	// its recorded statistic.
	ErrValidationMismatch = errors.New("replayed statistic does not match record")
)
