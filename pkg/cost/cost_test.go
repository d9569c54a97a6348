package cost

import (
	"testing"

	"github.com/amoreau/repartition/pkg/model"
	"github.com/stretchr/testify/assert"
)

func buildAssignment(target int, members []model.Student) *model.Assignment {
	students := make(map[string]model.Student, len(members))
	order := make([]string, 0, len(members))
	ids := make([]string, 0, len(members))
	for i, s := range members {
		students[s.ID] = s
		order = append(order, s.ID)
		ids = append(ids, s.ID)
		_ = i
	}
	snap := &model.Snapshot{
		Students:     students,
		StudentOrder: order,
		ClassNames:   []string{"6A"},
		Targets:      map[string]int{"6A": target},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{}, UniversalLV2: map[string]bool{}},
	}
	return model.NewAssignment(snap, map[string][]string{"6A": ids})
}

func TestScore_EmptyClassIsPenalized(t *testing.T) {
	a := buildAssignment(1, nil)
	score := Score(a, "6A", model.CohortStats{}, DefaultWeights(), DefaultTargets())
	assert.Equal(t, emptyClassPenalty, score)
}

func TestScore_ExactTargetStillPenalizesMissingHeads(t *testing.T) {
	s1 := model.NewStudent("s1", "A", "A", model.GenderFemale)
	s2 := model.NewStudent("s2", "B", "B", model.GenderMale)
	a := buildAssignment(2, []model.Student{s1, s2})

	cohort := model.ComputeCohortStats(a)
	score := Score(a, "6A", cohort, DefaultWeights(), DefaultTargets())

	// Headcount matches target, ratio/academic match cohort exactly, but
	// 0 heads against HeadMin=2 still costs a quadratic deficit term:
	// deficit=2, 2*2*500 = 2000.
	assert.Equal(t, 2000.0, score)
}

func TestScore_HeadcountDeviationIsQuadratic(t *testing.T) {
	s1 := model.NewStudent("s1", "A", "A", model.GenderFemale)
	a := buildAssignment(3, []model.Student{s1})

	cohort := model.ComputeCohortStats(a)
	score := Score(a, "6A", cohort, DefaultWeights(), DefaultTargets())

	// Headcount: delta = 1-3 = -2, term = 4*800 = 3200.
	// Heads-min: 0 heads against HeadMin=2, deficit=2, term = 4*500 = 2000.
	// Ratio/academic terms cancel since cohort is computed from this
	// same single-student class.
	assert.Equal(t, 5200.0, score)
}

func TestScore_LowTierExcessIsCubic(t *testing.T) {
	targets := DefaultTargets() // Niv1Max = 4
	students := make([]model.Student, 0, 5)
	for i := 0; i < 5; i++ {
		s := model.NewStudent(string(rune('a'+i)), "A", "A", model.GenderFemale)
		s.SetCOM(1)
		students = append(students, s)
	}
	a := buildAssignment(5, students)
	cohort := model.ComputeCohortStats(a)

	score := Score(a, "6A", cohort, DefaultWeights(), targets)

	// Low-tier: 5 students with COM=1, Niv1Max=4, excess=1 -> 1*100 = 100.
	// Heads-min: 0 heads against HeadMin=2, deficit=2, term = 4*500 = 2000.
	// Headcount and ratio/academic terms are zero (target matches n,
	// cohort computed from this same class).
	assert.Equal(t, 2100.0, score)
}

func TestSum_AddsAcrossClasses(t *testing.T) {
	s1 := model.NewStudent("s1", "A", "A", model.GenderFemale)
	a := buildAssignment(1, []model.Student{s1})
	snap := a.Snapshot
	snap.ClassNames = []string{"6A", "6B"}
	snap.Targets["6B"] = 0
	a.Members["6B"] = nil

	cohort := model.ComputeCohortStats(a)
	total := Sum(a, cohort, DefaultWeights(), DefaultTargets())

	scoreA := Score(a, "6A", cohort, DefaultWeights(), DefaultTargets())
	scoreB := Score(a, "6B", cohort, DefaultWeights(), DefaultTargets())
	assert.Equal(t, scoreA+scoreB, total)
}
