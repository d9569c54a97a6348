// Package feasibility implements the swap feasibility oracle: a pure,
// side-effect-free predicate deciding whether exchanging two students
// between their classes would violate any hard placement rule.
package feasibility

import (
	"github.com/amoreau/repartition/pkg/classifiers"
	"github.com/amoreau/repartition/pkg/model"
)

// Config carries the configuration constants the specialization rule
// needs: these are configuration, not universal truths.
// HasAntinomyAttribute lets a caller ingesting data with no antinomy
// column fail the oracle closed instead of silently treating every
// student as antinomy-free.
type Config struct {
	DefaultLV2           string
	SpecializedOPT       []string
	HasAntinomyAttribute bool
}

// DefaultConfig matches the source defaults: default LV2 "ESP",
// specialized OPTs {LATIN, CHAV}, antinomy attribute present.
func DefaultConfig() Config {
	return Config{
		DefaultLV2:           "ESP",
		SpecializedOPT:       []string{"LATIN", "CHAV"},
		HasAntinomyAttribute: true,
	}
}

// CanSwap decides whether moving studentA (currently in classA) into
// classB, and studentB (currently in classB) into classA, violates
// none of the rules below. It never mutates a and never errors;
// "infeasible" is an ordinary false return.
func CanSwap(a *model.Assignment, studentA, studentB string, offerings model.Offerings, cfg Config) bool {
	// Rule 7: missing antinomy attribute fails the oracle closed.
	if !cfg.HasAntinomyAttribute {
		return false
	}

	sa := a.Snapshot.Students[studentA]
	sb := a.Snapshot.Students[studentB]
	classA := a.ClassOf[studentA]
	classB := a.ClassOf[studentB]

	// Rule 1: mobility.
	if sa.IsFixed() || sb.IsFixed() {
		return false
	}

	// Rule 2: antinomy exclusion, symmetric. The partner being swapped
	// out of the destination class does not count.
	if sa.Antinomy != "" && hasOtherWithAntinomy(a, classB, sa.Antinomy, studentB) {
		return false
	}
	if sb.Antinomy != "" && hasOtherWithAntinomy(a, classA, sb.Antinomy, studentA) {
		return false
	}

	// Rule 3: affinity integrity, symmetric. The moving student itself
	// does not count as "another" member of its origin class.
	if sa.Affinity != "" && hasOtherWithAffinity(a, classA, sa.Affinity, studentA) {
		return false
	}
	if sb.Affinity != "" && hasOtherWithAffinity(a, classB, sb.Affinity, studentB) {
		return false
	}

	destA := offerings.ByClass[classA]
	destB := offerings.ByClass[classB]

	// Rule 4: LV2 offering, symmetric. A universal LV2 never restricts.
	if !lv2Allowed(sa.LV2, offerings, destB) {
		return false
	}
	if !lv2Allowed(sb.LV2, offerings, destA) {
		return false
	}

	// Rule 5: OPT offering, symmetric.
	if !optAllowed(sa.OPT, destB) {
		return false
	}
	if !optAllowed(sb.OPT, destA) {
		return false
	}

	// Rule 6: specialization preservation, symmetric.
	if violatesSpecialization(sa, destB, cfg) {
		return false
	}
	if violatesSpecialization(sb, destA, cfg) {
		return false
	}

	return true
}

func hasOtherWithAntinomy(a *model.Assignment, className, code, excludeID string) bool {
	for _, id := range a.Members[className] {
		if id == excludeID {
			continue
		}
		if a.Snapshot.Students[id].Antinomy == code {
			return true
		}
	}
	return false
}

func hasOtherWithAffinity(a *model.Assignment, className, code, excludeID string) bool {
	for _, id := range a.Members[className] {
		if id == excludeID {
			continue
		}
		if a.Snapshot.Students[id].Affinity == code {
			return true
		}
	}
	return false
}

func lv2Allowed(lv2 string, offerings model.Offerings, dest model.ClassOffering) bool {
	if lv2 == "" {
		return true
	}
	if offerings.UniversalLV2[lv2] {
		return true
	}
	if !classifiers.IsKnownLV2(lv2) {
		return true
	}
	return dest.OffersLV2(lv2)
}

func optAllowed(opt string, dest model.ClassOffering) bool {
	if opt == "" {
		return true
	}
	if !classifiers.IsKnownOPT(opt) {
		return true
	}
	return dest.OffersOPT(opt)
}

// violatesSpecialization implements rule 6: a class offering a scarce
// option must not accept a student carrying none of those options
// whose LV2 is non-default.
func violatesSpecialization(s model.Student, dest model.ClassOffering, cfg Config) bool {
	if !destOffersSpecialized(dest, cfg.SpecializedOPT) {
		return false
	}
	if studentHasSpecialized(s, cfg.SpecializedOPT) {
		return false
	}
	return s.LV2 != "" && s.LV2 != cfg.DefaultLV2
}

func destOffersSpecialized(dest model.ClassOffering, specialized []string) bool {
	for _, code := range specialized {
		if dest.OffersOPT(code) {
			return true
		}
	}
	return false
}

func studentHasSpecialized(s model.Student, specialized []string) bool {
	for _, code := range specialized {
		if s.OPT == code {
			return true
		}
	}
	return false
}

