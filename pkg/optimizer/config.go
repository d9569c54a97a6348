// Package optimizer implements the constraint-aware local-search
// scheduler: partner selection, two-way and three-way swap search,
// and the driver state machine that coordinates them to
// stagnation/convergence.
package optimizer

import (
	"github.com/amoreau/repartition/pkg/cost"
	"github.com/amoreau/repartition/pkg/feasibility"
)

// Config is the single struct carrying every recognized option from
// the optimizer's configuration table.
type Config struct {
	MaxSwaps         int
	StagnationLimit  int
	Weights          cost.Weights
	Targets          cost.Targets
	DefaultLV2       string
	SpecializedOPT   []string
	ExplorationRate  float64
	SampleSize       int

	// HasAntinomyAttribute feeds the feasibility oracle's fail-closed
	// behavior when the antinomy attribute is missing from the data model.
	HasAntinomyAttribute bool
}

// DefaultConfig matches every documented default.
func DefaultConfig() Config {
	return Config{
		MaxSwaps:             2000,
		StagnationLimit:      50,
		Weights:              cost.DefaultWeights(),
		Targets:              cost.DefaultTargets(),
		DefaultLV2:           "ESP",
		SpecializedOPT:       []string{"LATIN", "CHAV"},
		ExplorationRate:      0.2,
		SampleSize:           25,
		HasAntinomyAttribute: true,
	}
}

// feasibilityConfig projects the fields of Config the oracle needs.
func (c Config) feasibilityConfig() feasibility.Config {
	return feasibility.Config{
		DefaultLV2:           c.DefaultLV2,
		SpecializedOPT:       c.SpecializedOPT,
		HasAntinomyAttribute: c.HasAntinomyAttribute,
	}
}
