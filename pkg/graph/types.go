package graph

// Edge is a single outgoing connection from a station to an adjacent station.
// StationCode and LineCode carry the raw reference codes from the source data
// when they are known; walking transfers have empty codes.
type Edge struct {
	Station     string `json:"station" validate:"required"`
	Line        string `json:"line" validate:"required"`
	StationCode string `json:"station_cd,omitempty"`
	LineCode    string `json:"line_cd,omitempty"`
}

// Station is one node of the network. Lat and Lon are nil when the source
// data has no coordinate for the station.
type Station struct {
	Name  string   `json:"-"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Edges []Edge   `json:"edges"`
}

// Graph is an immutable view over the station network. It is built once by
// FromJSON (or a Builder in tests) and is safe for concurrent readers;
// nothing mutates it after construction.
type Graph struct {
	stations map[string]*Station
}

// Link identifies a directed connection between two station names. It is used
// in load reports to point at data-integrity findings.
type Link struct {
	From string
	To   string
}

// LoadReport summarises what FromJSON found while materialising a graph.
// Dangling lists edges whose target station is absent from the document;
// Asymmetric lists edges with no reverse counterpart. Both are reported for
// upstream investigation and are deliberately left in the graph: traversal
// treats dangling targets as dead ends and never assumes symmetry.
type LoadReport struct {
	Stations   int
	Edges      int
	Dangling   []Link
	Asymmetric []Link
}

// Clean reports whether the load found no data-integrity issues.
func (r *LoadReport) Clean() bool {
	return len(r.Dangling) == 0 && len(r.Asymmetric) == 0
}
