package traverse

import "errors"

// Sentinel errors for traversal preconditions. Both abort only the current
// generation attempt; batch drivers log and move on.
var (
	// ErrStationNotFound indicates a required station is absent from the graph.
	ErrStationNotFound = errors.New("station not found in graph")
	// ErrDisconnectedTerminals indicates no path exists between two required
	// terminal stations.
	ErrDisconnectedTerminals = errors.New("terminal stations are not connected")
)

// LookupError carries the operation and station behind a failed graph lookup.
// It unwraps to ErrStationNotFound so callers can keep matching the sentinel.
type LookupError struct {
	Op      string
	Station string
}

func (e *LookupError) Error() string {
	return e.Op + ": " + ErrStationNotFound.Error() + ": " + e.Station
}

func (e *LookupError) Unwrap() error {
	return ErrStationNotFound
}
