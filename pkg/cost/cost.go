// Package cost computes the per-class scalar score the optimizer
// minimizes: a weighted sum of headcount deviation, head-profile
// deviation, low-tier excess, gender-ratio deviation, and academic
// mean deviation. Lower is better; a non-empty class's score is
// always non-negative.
package cost

import (
	"math"

	"github.com/amoreau/repartition/pkg/model"
)

// emptyClassPenalty is the sentinel score for a class with no members
// — maximally bad, so the optimizer always prefers filling an empty
// class over leaving it empty.
const emptyClassPenalty = 10000.0

// Weights are the configurable term weights. w_profiles and
// w_friends are reserved: accepted for forward-compatibility with the
// source configuration surface, but no term in Score currently
// consumes them.
type Weights struct {
	WDistrib  float64
	WParity   float64
	WProfiles float64
	WFriends  float64
}

// DefaultWeights matches the documented defaults.
func DefaultWeights() Weights {
	return Weights{WDistrib: 5.0, WParity: 4.0, WProfiles: 10.0, WFriends: 1000.0}
}

// Targets are the configurable head/low-tier band.
type Targets struct {
	HeadMin  int
	HeadMax  int
	Niv1Max  int
	Niv1Min  int
}

// DefaultTargets matches the documented defaults.
func DefaultTargets() Targets {
	return Targets{HeadMin: 2, HeadMax: 5, Niv1Max: 4, Niv1Min: 0}
}

// Score computes the scalar cost of className under assignment a,
// given cohort-wide statistics and the configured weights/targets.
func Score(a *model.Assignment, className string, cohort model.CohortStats, w Weights, t Targets) float64 {
	students := a.StudentsIn(className)
	n := len(students)
	if n == 0 {
		return emptyClassPenalty
	}

	target := a.Snapshot.Targets[className]

	var heads, lowTier, female int
	var sumCOM, sumTRA, sumPART float64
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
		sumTRA += s.TRA()
		sumPART += s.PART()
	}

	total := 0.0

	// Headcount term: quadratic deviation from target.
	delta := float64(n - target)
	total += delta * delta * 800

	// Heads-min term: quadratic deficit.
	if heads < t.HeadMin {
		deficit := float64(t.HeadMin - heads)
		total += deficit * deficit * 500
	}

	// Heads-max term: linear excess — asymmetric by design.
	if heads > t.HeadMax {
		total += float64(heads-t.HeadMax) * 200
	}

	// Low-tier term: cubic excess dominates any other term when it fires.
	if lowTier > t.Niv1Max {
		excess := float64(lowTier - t.Niv1Max)
		total += excess * excess * excess * 100
	}

	// Gender term.
	ratioF := float64(female) / float64(n)
	total += math.Abs(ratioF-cohort.RatioF) * 1000 * w.WParity

	// Academic term — PART uses half the weight of COM/TRA,
	// acknowledging lower reliability. Missing PART defaults to 2.5
	// (model.Student.PART), which systematically pulls this term
	// toward zero; that is the documented source behavior and is not
	// corrected here.
	meanCOM := sumCOM / float64(n)
	meanTRA := sumTRA / float64(n)
	meanPART := sumPART / float64(n)
	total += math.Abs(meanCOM-cohort.MeanCOM) * 100 * w.WDistrib
	total += math.Abs(meanTRA-cohort.MeanTRA) * 100 * w.WDistrib
	total += math.Abs(meanPART-cohort.MeanPART) * 50 * w.WDistrib

	return total
}

// Sum totals Score across every class in the assignment — used by the
// monotone-improvement invariant and by stagnation bookkeeping.
func Sum(a *model.Assignment, cohort model.CohortStats, w Weights, t Targets) float64 {
	total := 0.0
	for _, name := range a.Snapshot.ClassNames {
		total += Score(a, name, cohort, w, t)
	}
	return total
}
