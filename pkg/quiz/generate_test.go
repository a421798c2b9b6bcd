package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ekitsunagi/quizgen/pkg/graph"
	"github.com/ekitsunagi/quizgen/pkg/traverse"
)

// quizGrid builds a rows x cols lattice with stations named rR_C.
func quizGrid(rows, cols int) *graph.Graph {
	b := graph.NewBuilder()
	name := func(r, c int) string { return fmt.Sprintf("r%d_%d", r, c) }
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

func gridPool() []string {
	return []string{"r0_0", "r0_3", "r3_0", "r3_3", "r1_2", "r2_1", "r0_2", "r2_3"}
}

func TestGenerate(t *testing.T) {
	g := quizGrid(4, 4)
	gen := NewGenerator(g, Options{StartCount: 3, DistractorCount: 2, SampleAttempts: 500}, testRand(7))

	q, err := gen.Generate("tokyo", gridPool())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if q.ID == "" {
		t.Error("Quiz must carry an id")
	}
	if q.Area != "tokyo" {
		t.Errorf("Area = %q, want tokyo", q.Area)
	}
	if len(q.StartStations) != 3 {
		t.Fatalf("StartStations = %v, want 3", q.StartStations)
	}
	for i := 0; i < len(q.StartStations); i++ {
		for j := i + 1; j < len(q.StartStations); j++ {
			if g.Linked(q.StartStations[i], q.StartStations[j]) {
				t.Errorf("Start stations %s and %s are linked", q.StartStations[i], q.StartStations[j])
			}
		}
	}

	// Starts plus answers must form one connected station set.
	members := append([]string{}, q.StartStations...)
	members = append(members, q.Answers()...)
	if traverse.CountComponents(g, members) != 1 {
		t.Errorf("Start and answer stations are not connected: %v", members)
	}

	// Distractors never overlap the puzzle's own stations.
	inPuzzle := make(map[string]bool, len(members))
	for _, s := range members {
		inPuzzle[s] = true
	}
	for _, d := range q.Distractors() {
		if inPuzzle[d] {
			t.Errorf("Distractor %s is part of the puzzle", d)
		}
	}

	if q.MaxConnectedComponents < 1 {
		t.Errorf("MaxConnectedComponents = %d, want at least 1", q.MaxConnectedComponents)
	}
	if err := Verify(g, q); err != nil {
		t.Errorf("Fresh quiz must verify: %v", err)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	g := quizGrid(4, 4)

	first, err := NewGenerator(g, DefaultOptions(), testRand(11)).Generate("tokyo", gridPool())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := NewGenerator(g, DefaultOptions(), testRand(11)).Generate("tokyo", gridPool())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Everything but the random id must match under the same seed.
	if fmt.Sprint(first.StartStations) != fmt.Sprint(second.StartStations) {
		t.Errorf("Starts diverged: %v vs %v", first.StartStations, second.StartStations)
	}
	if fmt.Sprint(first.Questions) != fmt.Sprint(second.Questions) {
		t.Errorf("Questions diverged: %v vs %v", first.Questions, second.Questions)
	}
	if first.MaxConnectedComponents != second.MaxConnectedComponents {
		t.Errorf("Statistics diverged: %d vs %d", first.MaxConnectedComponents, second.MaxConnectedComponents)
	}
}

func TestGenerate_PoolTooSmall(t *testing.T) {
	g := quizGrid(4, 4)
	gen := NewGenerator(g, DefaultOptions(), testRand(1))

	_, err := gen.Generate("tokyo", []string{"r0_0", "r3_3"})
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Errorf("Expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestGenerate_DeduplicatesPool(t *testing.T) {
	g := quizGrid(4, 4)
	gen := NewGenerator(g, DefaultOptions(), testRand(1))

	// Duplicates must not inflate the pool past the minimum size check.
	_, err := gen.Generate("tokyo", []string{"r0_0", "r0_0", "r0_0", "r3_3"})
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Errorf("Expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestInterleave(t *testing.T) {
	ordered := []string{"one", "two", "three"}
	distractors := []string{"d1", "d2"}

	questions := interleave(ordered, distractors, testRand(5))
	if len(questions) != 5 {
		t.Fatalf("Questions = %v, want 5 entries", questions)
	}

	// Correct entries keep scheduler order; distractors keep their set.
	var gotOrdered, gotDistractors []string
	for _, question := range questions {
		if question.IsCorrect {
			gotOrdered = append(gotOrdered, question.Station)
		} else {
			gotDistractors = append(gotDistractors, question.Station)
		}
	}
	for i := range ordered {
		if gotOrdered[i] != ordered[i] {
			t.Fatalf("Correct entries = %v, want order %v", gotOrdered, ordered)
		}
	}
	if len(gotDistractors) != len(distractors) {
		t.Errorf("Distractors = %v, want %v", gotDistractors, distractors)
	}
}

func TestInterleave_NoDistractors(t *testing.T) {
	questions := interleave([]string{"one", "two"}, nil, testRand(5))
	if len(questions) != 2 {
		t.Fatalf("Questions = %v, want 2 entries", questions)
	}
	if questions[0].Station != "one" || questions[1].Station != "two" {
		t.Errorf("Questions = %v, want scheduler order preserved", questions)
	}
}
