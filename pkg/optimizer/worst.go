package optimizer

import (
	"github.com/amoreau/repartition/pkg/cost"
	"github.com/amoreau/repartition/pkg/model"
)

// worstClass returns the name of the class with the highest score.
// Ties are broken by the snapshot's stable class order. Returns "",
// false if every class scores exactly zero — the optimizer's
// convergence signal.
func worstClass(a *model.Assignment, cohort model.CohortStats, cfg Config) (string, bool) {
	var best string
	var bestScore float64
	found := false

	for _, name := range model.StableClassNames(a) {
		score := cost.Score(a, name, cohort, cfg.Weights, cfg.Targets)
		if !found || score > bestScore {
			best = name
			bestScore = score
			found = true
		}
	}

	if !found || bestScore == 0 {
		return "", false
	}
	return best, true
}
