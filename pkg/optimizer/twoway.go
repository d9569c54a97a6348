package optimizer

import (
	"math/rand"

	"github.com/amoreau/repartition/pkg/cost"
	"github.com/amoreau/repartition/pkg/feasibility"
	"github.com/amoreau/repartition/pkg/model"
)

// Move is a candidate two-student exchange between two classes, with
// the cost gain it would produce if applied.
type Move struct {
	StudentA, StudentB string
	ClassA, ClassB     string
	Gain               float64
}

// TwoWaySearch samples up to cfg.SampleSize students from each of
// class1 and class2, filters by feasibility, and returns the single
// best positive-gain swap found. Returns nil if no
// feasible move has positive gain.
func TwoWaySearch(a *model.Assignment, class1, class2 string, cohort model.CohortStats, cfg Config, rng *rand.Rand) *Move {
	sample1 := sampleIDs(rng, a.Members[class1], cfg.SampleSize)
	sample2 := sampleIDs(rng, a.Members[class2], cfg.SampleSize)

	scoreBefore := cost.Score(a, class1, cohort, cfg.Weights, cfg.Targets) +
		cost.Score(a, class2, cohort, cfg.Weights, cfg.Targets)

	fc := cfg.feasibilityConfig()

	var best *Move
	for _, studentA := range sample1 {
		sa := a.Snapshot.Students[studentA]
		if sa.IsFixed() {
			continue
		}
		for _, studentB := range sample2 {
			sb := a.Snapshot.Students[studentB]
			if sb.IsFixed() {
				continue
			}
			if !feasibility.CanSwap(a, studentA, studentB, a.Snapshot.Offerings, fc) {
				continue
			}

			gain := evaluateSwapGain(a, studentA, studentB, class1, class2, scoreBefore, cohort, cfg)
			if gain > 0 && (best == nil || gain > best.Gain) {
				best = &Move{StudentA: studentA, StudentB: studentB, ClassA: class1, ClassB: class2, Gain: gain}
			}
		}
	}

	return best
}

// evaluateSwapGain applies the swap to a in place, scores both
// classes, and reverts it; copying the assignment for every candidate
// pair would be wasteful.
func evaluateSwapGain(a *model.Assignment, studentA, studentB, class1, class2 string, scoreBefore float64, cohort model.CohortStats, cfg Config) float64 {
	a.Swap(studentA, studentB)
	scoreAfter := cost.Score(a, class1, cohort, cfg.Weights, cfg.Targets) +
		cost.Score(a, class2, cohort, cfg.Weights, cfg.Targets)
	a.Swap(studentA, studentB) // revert — Swap is its own inverse

	return scoreBefore - scoreAfter
}

// sampleIDs returns up to n ids sampled without replacement from ids,
// using rng so the selection is reproducible under a fixed seed. The
// input slice is never mutated.
func sampleIDs(rng *rand.Rand, ids []string, n int) []string {
	if len(ids) <= n {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}

	pool := make([]string, len(ids))
	copy(pool, ids)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}
