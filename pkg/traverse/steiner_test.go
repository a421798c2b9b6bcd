package traverse

import (
	"errors"
	"testing"

	"github.com/ekitsunagi/quizgen/pkg/graph"
)

func TestMinimalConnectingSet_ChainEndpoints(t *testing.T) {
	g := chainGraph()

	set, err := MinimalConnectingSet(g, []string{"A", "E"})
	if err != nil {
		t.Fatalf("MinimalConnectingSet failed: %v", err)
	}

	want := []string{"A", "B", "C", "D", "E"}
	if len(set) != len(want) {
		t.Fatalf("Set = %v, want %v", set, want)
	}
	for _, name := range want {
		if !set[name] {
			t.Errorf("Set missing %s", name)
		}
	}
}

func TestMinimalConnectingSet_Star(t *testing.T) {
	// Star with center H and leaves P, Q, R, S; no leaf-leaf edges.
	g := graph.NewBuilder().
		AddLink("H", "P", "L1").
		AddLink("H", "Q", "L1").
		AddLink("H", "R", "L2").
		AddLink("H", "S", "L2").
		Build()

	set, err := MinimalConnectingSet(g, []string{"P", "Q", "R"})
	if err != nil {
		t.Fatalf("MinimalConnectingSet failed: %v", err)
	}

	// Pairwise distances are all 2, every path runs through H.
	want := []string{"H", "P", "Q", "R"}
	if len(set) != len(want) {
		t.Fatalf("Set has %d stations %v, want %v", len(set), set, want)
	}
	for _, name := range want {
		if !set[name] {
			t.Errorf("Set missing %s", name)
		}
	}
	if set["S"] {
		t.Error("S is not needed to connect the terminals")
	}
}

func TestMinimalConnectingSet_TwoTerminals(t *testing.T) {
	g := chainGraph()

	set, err := MinimalConnectingSet(g, []string{"B", "D"})
	if err != nil {
		t.Fatalf("MinimalConnectingSet failed: %v", err)
	}
	for _, name := range []string{"B", "C", "D"} {
		if !set[name] {
			t.Errorf("Set missing %s", name)
		}
	}
	if len(set) != 3 {
		t.Errorf("Set = %v, want exactly {B C D}", set)
	}
}

func TestMinimalConnectingSet_SingleTerminal(t *testing.T) {
	g := chainGraph()

	set, err := MinimalConnectingSet(g, []string{"C"})
	if err != nil {
		t.Fatalf("MinimalConnectingSet failed: %v", err)
	}
	if len(set) != 1 || !set["C"] {
		t.Errorf("Set = %v, want {C}", set)
	}
}

func TestMinimalConnectingSet_MissingTerminal(t *testing.T) {
	g := chainGraph()

	_, err := MinimalConnectingSet(g, []string{"A", "Nowhere"})
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("Expected ErrStationNotFound, got %v", err)
	}

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Station != "Nowhere" {
		t.Errorf("Expected LookupError naming the station, got %v", err)
	}
}

func TestMinimalConnectingSet_DisconnectedTerminals(t *testing.T) {
	g := chainGraph()

	_, err := MinimalConnectingSet(g, []string{"A", "E", "F"})
	if !errors.Is(err, ErrDisconnectedTerminals) {
		t.Errorf("Expected ErrDisconnectedTerminals, got %v", err)
	}
}

func TestMinimalConnectingSet_ContainsTerminalsAndConnected(t *testing.T) {
	// A 3x3 grid; terminals at three corners.
	g := gridGraph(3, 3)

	terminals := []string{"n0_0", "n0_2", "n2_0"}
	set, err := MinimalConnectingSet(g, terminals)
	if err != nil {
		t.Fatalf("MinimalConnectingSet failed: %v", err)
	}

	for _, term := range terminals {
		if !set[term] {
			t.Errorf("Result must contain terminal %s", term)
		}
	}

	members := make([]string, 0, len(set))
	for name := range set {
		members = append(members, name)
	}
	if CountComponents(g, members) != 1 {
		t.Error("Result must be a single connected component")
	}
}

// TestMinimalConnectingSet_TwoApproximation verifies the approximation bound
// on small synthetic graphs by brute-forcing the optimal Steiner node set.
func TestMinimalConnectingSet_TwoApproximation(t *testing.T) {
	cases := []struct {
		name      string
		g         *graph.Graph
		terminals []string
	}{
		{"grid3x3", gridGraph(3, 3), []string{"n0_0", "n2_2", "n0_2"}},
		{"grid2x4", gridGraph(2, 4), []string{"n0_0", "n1_3", "n0_3"}},
		{"star", graph.NewBuilder().
			AddLink("H", "P", "L").
			AddLink("H", "Q", "L").
			AddLink("H", "R", "L").
			AddLink("P", "Q", "L").
			Build(), []string{"P", "Q", "R"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := MinimalConnectingSet(tc.g, tc.terminals)
			if err != nil {
				t.Fatalf("MinimalConnectingSet failed: %v", err)
			}

			optimal := bruteForceSteinerSize(tc.g, tc.terminals)
			if optimal == 0 {
				t.Fatal("Brute force found no connecting set")
			}

			// Edge counts of the spanning trees: |nodes|-1.
			if got, bound := len(set)-1, 2*(optimal-1); got > bound {
				t.Errorf("Approximation used %d edges, optimal %d, bound %d", got, optimal-1, bound)
			}
		})
	}
}

// bruteForceSteinerSize finds the size of the smallest connected station set
// containing all terminals, by enumerating subsets of the remaining
// stations. Only usable on graphs of roughly ten stations.
func bruteForceSteinerSize(g *graph.Graph, terminals []string) int {
	terminalSet := make(map[string]bool, len(terminals))
	for _, term := range terminals {
		terminalSet[term] = true
	}
	var others []string
	for _, name := range g.Names() {
		if !terminalSet[name] {
			others = append(others, name)
		}
	}

	best := 0
	for mask := 0; mask < 1<<len(others); mask++ {
		candidate := append([]string{}, terminals...)
		for i, name := range others {
			if mask&(1<<i) != 0 {
				candidate = append(candidate, name)
			}
		}
		if best != 0 && len(candidate) >= best {
			continue
		}
		if CountComponents(g, candidate) == 1 {
			best = len(candidate)
		}
	}
	return best
}

// gridGraph builds a rows x cols lattice with stations named nR_C.
func gridGraph(rows, cols int) *graph.Graph {
	b := graph.NewBuilder()
	name := func(r, c int) string {
		return "n" + string(rune('0'+r)) + "_" + string(rune('0'+c))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddLink(name(r, c), name(r, c+1), "row")
			}
			if r+1 < rows {
				b.AddLink(name(r, c), name(r+1, c), "col")
			}
		}
	}
	return b.Build()
}

func TestUnionFind(t *testing.T) {
	uf := newUnionFind(5)

	if !uf.union(0, 1) {
		t.Error("First union of 0 and 1 must merge")
	}
	if uf.union(1, 0) {
		t.Error("Repeated union must report no merge")
	}
	if !uf.union(2, 3) {
		t.Error("Union of 2 and 3 must merge")
	}
	if uf.find(0) != uf.find(1) {
		t.Error("0 and 1 must share a representative")
	}
	if uf.find(0) == uf.find(2) {
		t.Error("0 and 2 are in different sets")
	}

	uf.union(1, 3)
	if uf.find(0) != uf.find(2) {
		t.Error("All of 0..3 must share a representative after linking")
	}
	if uf.find(4) == uf.find(0) {
		t.Error("4 was never merged")
	}
}
