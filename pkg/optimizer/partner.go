package optimizer

import (
	"math"
	"math/rand"

	"github.com/amoreau/repartition/pkg/model"
)

// classProfile is the handful of derived numbers complementarity
// scoring compares between the worst class and its candidates.
type classProfile struct {
	heads   int
	lowTier int
	ratioF  float64
	meanCOM float64
}

func profileOf(a *model.Assignment, className string) classProfile {
	students := a.StudentsIn(className)
	var heads, lowTier, female int
	var sumCOM float64
	for _, s := range students {
		if s.IsHead() {
			heads++
		}
		if s.IsLowTier() {
			lowTier++
		}
		if s.Gender == model.GenderFemale {
			female++
		}
		sumCOM += s.COM()
	}
	n := len(students)
	if n == 0 {
		return classProfile{}
	}
	return classProfile{
		heads:   heads,
		lowTier: lowTier,
		ratioF:  float64(female) / float64(n),
		meanCOM: sumCOM / float64(n),
	}
}

// SelectPartner chooses a complementary class for worst.
// Returns "", false only when there is a single class in a.
func SelectPartner(a *model.Assignment, worst string, cohort model.CohortStats, cfg Config, rng *rand.Rand) (string, bool) {
	others := otherClasses(a, worst)
	if len(others) == 0 {
		return "", false
	}

	if rng.Float64() < cfg.ExplorationRate {
		return others[rng.Intn(len(others))], true
	}

	worstProfile := profileOf(a, worst)
	deltaHeadsW := float64(worstProfile.heads - cfg.Targets.HeadMin)
	deltaLowW := float64(worstProfile.lowTier - cfg.Targets.Niv1Max)

	var best string
	var bestScore float64
	found := false

	for _, candidate := range others {
		p := profileOf(a, candidate)
		deltaHeadsC := float64(p.heads - cfg.Targets.HeadMin)
		deltaLowC := float64(p.lowTier - cfg.Targets.Niv1Max)

		score := 3*math.Abs(deltaHeadsW-deltaHeadsC) + 3*math.Abs(deltaLowW-deltaLowC)

		if straddles(worstProfile.ratioF, p.ratioF, cohort.RatioF) {
			score += 2
		}
		if straddles(worstProfile.meanCOM, p.meanCOM, cohort.MeanCOM) {
			score += 2 * math.Abs(worstProfile.meanCOM-p.meanCOM)
		}

		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}

	return best, found
}

// straddles reports whether x and y fall on opposite sides of mean.
func straddles(x, y, mean float64) bool {
	return (x-mean)*(y-mean) < 0
}

func otherClasses(a *model.Assignment, exclude string) []string {
	all := model.StableClassNames(a)
	out := make([]string, 0, len(all))
	for _, name := range all {
		if name != exclude {
			out = append(out, name)
		}
	}
	return out
}
