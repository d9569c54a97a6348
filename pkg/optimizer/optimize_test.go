package optimizer

import (
	"math/rand"
	"testing"

	"github.com/amoreau/repartition/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestOptimize_EmptyCohortReturnsOKImmediately(t *testing.T) {
	snap := &model.Snapshot{
		Students:     map[string]model.Student{},
		StudentOrder: nil,
		ClassNames:   []string{"6A"},
		Targets:      map[string]int{"6A": 0},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{"6A": {}}, UniversalLV2: map[string]bool{}},
	}

	result := Optimize(snap, map[string][]string{"6A": {}}, DefaultConfig(), rand.New(rand.NewSource(1)), nil)

	assert.True(t, result.OK)
	assert.Equal(t, 0, result.SwapsApplied)
	assert.Equal(t, 0, result.SwapsThreeWay)
}

func TestOptimize_ReturnsValidatedResult(t *testing.T) {
	s1 := model.NewStudent("s1", "A", "A", model.GenderFemale)
	s2 := model.NewStudent("s2", "B", "B", model.GenderMale)
	snap := &model.Snapshot{
		Students:     map[string]model.Student{"s1": s1, "s2": s2},
		StudentOrder: []string{"s1", "s2"},
		ClassNames:   []string{"6A", "6B"},
		Targets:      map[string]int{"6A": 1, "6B": 1},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{"6A": {}, "6B": {}}, UniversalLV2: map[string]bool{}},
	}

	result := Optimize(snap, map[string][]string{"6A": {"s1"}, "6B": {"s2"}}, DefaultConfig(), rand.New(rand.NewSource(1)), nil)

	assert.True(t, result.OK)
	assert.Empty(t, result.Violations)
	assert.NotNil(t, result.FinalAssignment)
}

func TestOptimize_MissingAntinomyAttributeYieldsZeroSwaps(t *testing.T) {
	s1 := model.NewStudent("s1", "A", "A", model.GenderFemale)
	s2 := model.NewStudent("s2", "B", "B", model.GenderMale)
	snap := &model.Snapshot{
		Students:     map[string]model.Student{"s1": s1, "s2": s2},
		StudentOrder: []string{"s1", "s2"},
		ClassNames:   []string{"6A", "6B"},
		Targets:      map[string]int{"6A": 1, "6B": 1},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{"6A": {}, "6B": {}}, UniversalLV2: map[string]bool{}},
	}

	cfg := DefaultConfig()
	cfg.HasAntinomyAttribute = false

	result := Optimize(snap, map[string][]string{"6A": {"s1"}, "6B": {"s2"}}, cfg, rand.New(rand.NewSource(1)), nil)

	assert.Equal(t, 0, result.SwapsApplied)
	assert.Equal(t, 0, result.SwapsThreeWay)
	assert.True(t, result.OK) // validator not checked, not failed
}
