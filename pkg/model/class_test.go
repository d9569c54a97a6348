package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSnapshot() *Snapshot {
	students := map[string]Student{
		"s1": NewStudent("s1", "A", "A", GenderFemale),
		"s2": NewStudent("s2", "B", "B", GenderMale),
		"s3": NewStudent("s3", "C", "C", GenderFemale),
	}
	return &Snapshot{
		Students:     students,
		StudentOrder: []string{"s1", "s2", "s3"},
		ClassNames:   []string{"6A", "6B"},
		Targets:      map[string]int{"6A": 2, "6B": 1},
		Offerings:    Offerings{ByClass: map[string]ClassOffering{}, UniversalLV2: map[string]bool{}},
	}
}

func TestNewAssignment_BuildsClassOf(t *testing.T) {
	snap := buildSnapshot()
	a := NewAssignment(snap, map[string][]string{"6A": {"s1", "s2"}, "6B": {"s3"}})

	assert.Equal(t, "6A", a.ClassOf["s1"])
	assert.Equal(t, "6A", a.ClassOf["s2"])
	assert.Equal(t, "6B", a.ClassOf["s3"])
	assert.Equal(t, []string{"s1", "s2"}, a.ClassMembers("6A"))
}

func TestMoveStudent_UpdatesBothSides(t *testing.T) {
	snap := buildSnapshot()
	a := NewAssignment(snap, map[string][]string{"6A": {"s1", "s2"}, "6B": {"s3"}})

	a.MoveStudent("s1", "6B")

	assert.Equal(t, "6B", a.ClassOf["s1"])
	assert.NotContains(t, a.Members["6A"], "s1")
	assert.Contains(t, a.Members["6B"], "s1")
}

func TestMoveStudent_NoOpWhenSameClass(t *testing.T) {
	snap := buildSnapshot()
	a := NewAssignment(snap, map[string][]string{"6A": {"s1", "s2"}, "6B": {"s3"}})

	a.MoveStudent("s1", "6A")

	assert.Equal(t, []string{"s1", "s2"}, a.Members["6A"])
}

func TestSwap_IsSelfInverse(t *testing.T) {
	snap := buildSnapshot()
	a := NewAssignment(snap, map[string][]string{"6A": {"s1", "s2"}, "6B": {"s3"}})

	before := map[string]string{"s1": a.ClassOf["s1"], "s3": a.ClassOf["s3"]}

	a.Swap("s1", "s3")
	assert.Equal(t, "6B", a.ClassOf["s1"])
	assert.Equal(t, "6A", a.ClassOf["s3"])

	a.Swap("s1", "s3")
	assert.Equal(t, before["s1"], a.ClassOf["s1"])
	assert.Equal(t, before["s3"], a.ClassOf["s3"])
}

func TestComputeCohortStats(t *testing.T) {
	snap := buildSnapshot()
	a := NewAssignment(snap, map[string][]string{"6A": {"s1", "s2"}, "6B": {"s3"}})

	stats := ComputeCohortStats(a)
	assert.InDelta(t, 2.0/3.0, stats.RatioF, 1e-9)
	assert.Equal(t, defaultScore, stats.MeanCOM)
}

func TestStableClassNames_PreservesIngestionOrder(t *testing.T) {
	snap := buildSnapshot()
	snap.ClassNames = []string{"6B", "6A"}
	a := NewAssignment(snap, map[string][]string{"6A": {}, "6B": {}})

	assert.Equal(t, []string{"6B", "6A"}, StableClassNames(a))
}
