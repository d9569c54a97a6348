package optimizer

import (
	"math/rand"

	"github.com/amoreau/repartition/pkg/cost"
	"github.com/amoreau/repartition/pkg/feasibility"
	"github.com/amoreau/repartition/pkg/model"
)

const (
	threeWayTriplesPerIteration     = 15
	threeWayStudentTriplesPerTriple = 10
)

// Rotation is a candidate three-class cycle swap: a leaves ClassA for
// ClassB, b leaves ClassB for ClassC, c leaves ClassC for ClassA.
type Rotation struct {
	StudentA, StudentB, StudentC string
	ClassA, ClassB, ClassC       string
	Gain                         float64
}

// ThreeWaySearch samples up to threeWayTriplesPerIteration random
// ordered triples of distinct classes, and within each triple up to
// threeWayStudentTriplesPerTriple student triples, returning the best
// positive-gain rotation found. Returns nil if none.
//
// Feasibility is checked pairwise on (a, b) between ClassA/ClassB and
// (b, c) between ClassB/ClassC using the ordinary two-way oracle; the
// third leg (c, a) is never separately validated. This is the
// documented source simplification, kept for compatibility rather
// than tightened.
func ThreeWaySearch(a *model.Assignment, cohort model.CohortStats, cfg Config, rng *rand.Rand) *Rotation {
	classNames := model.StableClassNames(a)
	if len(classNames) < 3 {
		return nil
	}

	fc := cfg.feasibilityConfig()

	var best *Rotation
	for t := 0; t < threeWayTriplesPerIteration; t++ {
		c1, c2, c3 := sampleDistinctTriple(rng, classNames)

		scoreBefore := cost.Score(a, c1, cohort, cfg.Weights, cfg.Targets) +
			cost.Score(a, c2, cohort, cfg.Weights, cfg.Targets) +
			cost.Score(a, c3, cohort, cfg.Weights, cfg.Targets)

		for s := 0; s < threeWayStudentTriplesPerTriple; s++ {
			studentA, okA := randomMember(rng, a, c1)
			studentB, okB := randomMember(rng, a, c2)
			studentC, okC := randomMember(rng, a, c3)
			if !okA || !okB || !okC {
				continue
			}

			sa := a.Snapshot.Students[studentA]
			sb := a.Snapshot.Students[studentB]
			sc := a.Snapshot.Students[studentC]
			if sa.IsFixed() || sb.IsFixed() || sc.IsFixed() {
				continue
			}

			if !feasibility.CanSwap(a, studentA, studentB, a.Snapshot.Offerings, fc) {
				continue
			}
			if !feasibility.CanSwap(a, studentB, studentC, a.Snapshot.Offerings, fc) {
				continue
			}

			gain := evaluateRotationGain(a, studentA, studentB, studentC, c1, c2, c3, scoreBefore, cohort, cfg)
			if gain > 0 && (best == nil || gain > best.Gain) {
				best = &Rotation{
					StudentA: studentA, StudentB: studentB, StudentC: studentC,
					ClassA: c1, ClassB: c2, ClassC: c3,
					Gain: gain,
				}
			}
		}
	}

	return best
}

// ApplyRotation moves the three students around the cycle: a->ClassB,
// b->ClassC, c->ClassA.
func ApplyRotation(a *model.Assignment, r *Rotation) {
	a.MoveStudent(r.StudentA, r.ClassB)
	a.MoveStudent(r.StudentB, r.ClassC)
	a.MoveStudent(r.StudentC, r.ClassA)
}

func evaluateRotationGain(a *model.Assignment, studentA, studentB, studentC, c1, c2, c3 string, scoreBefore float64, cohort model.CohortStats, cfg Config) float64 {
	r := &Rotation{StudentA: studentA, StudentB: studentB, StudentC: studentC, ClassA: c1, ClassB: c2, ClassC: c3}
	ApplyRotation(a, r)

	scoreAfter := cost.Score(a, c1, cohort, cfg.Weights, cfg.Targets) +
		cost.Score(a, c2, cohort, cfg.Weights, cfg.Targets) +
		cost.Score(a, c3, cohort, cfg.Weights, cfg.Targets)

	// Revert each student directly to its pre-rotation class, rather
	// than composing the inverse rotation, so there is no ambiguity
	// about cycle direction.
	a.MoveStudent(studentA, c1)
	a.MoveStudent(studentB, c2)
	a.MoveStudent(studentC, c3)

	return scoreBefore - scoreAfter
}

func sampleDistinctTriple(rng *rand.Rand, classNames []string) (string, string, string) {
	idx := rng.Perm(len(classNames))[:3]
	return classNames[idx[0]], classNames[idx[1]], classNames[idx[2]]
}

func randomMember(rng *rand.Rand, a *model.Assignment, className string) (string, bool) {
	members := a.Members[className]
	if len(members) == 0 {
		return "", false
	}
	return members[rng.Intn(len(members))], true
}
