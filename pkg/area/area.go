// Package area holds the per-area candidate pools the generation engine is
// fed with: which stations may serve as starts and goals in each region of
// the network. Pools are produced by the upstream data pipeline; this
// package only parses and validates them.
package area

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// ErrNoAreas is returned when the pools document defines no areas.
var ErrNoAreas = errors.New("area document defines no areas")

// Pools are the candidate stations of one area. Goal needs at least three
// entries because production quizzes fix the start-set size at three and
// draw it from the goal pool.
type Pools struct {
	Start []string `yaml:"start" json:"start" validate:"required,min=1,dive,required"`
	Goal  []string `yaml:"goal" json:"goal" validate:"required,min=3,dive,required"`
}

// UniqueGoals returns the goal pool without duplicates, in sorted order.
func (p Pools) UniqueGoals() []string {
	return uniqueSorted(p.Goal)
}

// UniqueStarts returns the start pool without duplicates, in sorted order.
func (p Pools) UniqueStarts() []string {
	return uniqueSorted(p.Start)
}

// Areas maps area key to its candidate pools.
type Areas map[string]Pools

// Names returns the defined area keys in sorted order.
func (a Areas) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads an area pools document. YAML and JSON documents are both
// accepted (the upstream pipeline emits JSON, which the YAML parser
// subsumes). Every area must carry a usable start and goal pool.
func Parse(data []byte) (Areas, error) {
	var areas Areas
	if err := yaml.Unmarshal(data, &areas); err != nil {
		return nil, fmt.Errorf("parse area document: %w", err)
	}
	if len(areas) == 0 {
		return nil, ErrNoAreas
	}
	for name, pools := range areas {
		if err := validate.Struct(pools); err != nil {
			return nil, fmt.Errorf("area %q: %w", name, err)
		}
		if len(uniqueSorted(pools.Goal)) < 3 {
			return nil, fmt.Errorf("area %q: fewer than 3 unique goal stations", name)
		}
	}
	return areas, nil
}

func uniqueSorted(stations []string) []string {
	seen := make(map[string]bool, len(stations))
	out := make([]string, 0, len(stations))
	for _, s := range stations {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
