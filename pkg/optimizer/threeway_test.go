package optimizer

import (
	"math/rand"
	"testing"

	"github.com/amoreau/repartition/pkg/model"
	"github.com/stretchr/testify/assert"
)

func threeUnbalancedClasses() *model.Assignment {
	students := make(map[string]model.Student)
	order := []string{}
	members := map[string][]string{"6A": {}, "6B": {}, "6C": {}}

	// 6A overfull with 4, 6B and 6C empty-ish with 1 each, target 2 each.
	for i := 0; i < 4; i++ {
		id := "a" + string(rune('0'+i))
		students[id] = model.NewStudent(id, "A", "A", model.GenderFemale)
		order = append(order, id)
		members["6A"] = append(members["6A"], id)
	}
	students["b0"] = model.NewStudent("b0", "B", "B", model.GenderMale)
	order = append(order, "b0")
	members["6B"] = append(members["6B"], "b0")

	students["c0"] = model.NewStudent("c0", "C", "C", model.GenderMale)
	order = append(order, "c0")
	members["6C"] = append(members["6C"], "c0")

	snap := &model.Snapshot{
		Students:     students,
		StudentOrder: order,
		ClassNames:   []string{"6A", "6B", "6C"},
		Targets:      map[string]int{"6A": 2, "6B": 2, "6C": 2},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{"6A": {}, "6B": {}, "6C": {}}, UniversalLV2: map[string]bool{}},
	}
	return model.NewAssignment(snap, members)
}

func TestThreeWaySearch_RequiresThreeClasses(t *testing.T) {
	students := map[string]model.Student{"a1": model.NewStudent("a1", "A", "A", model.GenderFemale)}
	snap := &model.Snapshot{
		Students:     students,
		StudentOrder: []string{"a1"},
		ClassNames:   []string{"6A", "6B"},
		Targets:      map[string]int{"6A": 1, "6B": 0},
		Offerings:    model.Offerings{ByClass: map[string]model.ClassOffering{"6A": {}, "6B": {}}, UniversalLV2: map[string]bool{}},
	}
	a := model.NewAssignment(snap, map[string][]string{"6A": {"a1"}, "6B": {}})
	cfg := DefaultConfig()
	cohort := model.ComputeCohortStats(a)
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, ThreeWaySearch(a, cohort, cfg, rng))
}

func TestThreeWaySearch_LeavesAssignmentUnchangedWhenOnlyEvaluating(t *testing.T) {
	a := threeUnbalancedClasses()
	cfg := DefaultConfig()
	cohort := model.ComputeCohortStats(a)
	rng := rand.New(rand.NewSource(5))

	beforeA := append([]string(nil), a.Members["6A"]...)
	beforeB := append([]string(nil), a.Members["6B"]...)
	beforeC := append([]string(nil), a.Members["6C"]...)

	ThreeWaySearch(a, cohort, cfg, rng)

	assert.ElementsMatch(t, beforeA, a.Members["6A"])
	assert.ElementsMatch(t, beforeB, a.Members["6B"])
	assert.ElementsMatch(t, beforeC, a.Members["6C"])
}

func TestApplyRotation_MovesAllThreeStudents(t *testing.T) {
	a := threeUnbalancedClasses()
	r := &Rotation{StudentA: "a0", StudentB: "b0", StudentC: "c0", ClassA: "6A", ClassB: "6B", ClassC: "6C"}

	ApplyRotation(a, r)

	assert.Equal(t, "6B", a.ClassOf["a0"])
	assert.Equal(t, "6C", a.ClassOf["b0"])
	assert.Equal(t, "6A", a.ClassOf["c0"])
}
