// Package mobility derives the fixed/movable flag for each student:
// a student is fixed iff it carries an affinity code, an antinomy
// code, or its LV2+OPT combination admits only one class.
package mobility

import (
	"github.com/amoreau/repartition/pkg/classifiers"
	"github.com/amoreau/repartition/pkg/model"
)

// Compute returns, for every student id in snapshot, whether that
// student must be treated as fixed.
func Compute(snapshot *model.Snapshot) map[string]model.Mobility {
	out := make(map[string]model.Mobility, len(snapshot.StudentOrder))

	for _, id := range snapshot.StudentOrder {
		s := snapshot.Students[id]
		out[id] = classify(s, snapshot)
	}

	return out
}

func classify(s model.Student, snapshot *model.Snapshot) model.Mobility {
	if s.Affinity != "" {
		return model.Fixed
	}
	if s.Antinomy != "" {
		return model.Fixed
	}
	if len(admissibleClasses(s, snapshot)) == 1 {
		return model.Fixed
	}
	return model.Movable
}

// admissibleClasses lists the classes that could, ignoring every
// other constraint, host s given its LV2 and OPT codes alone.
func admissibleClasses(s model.Student, snapshot *model.Snapshot) []string {
	var admissible []string

	for _, name := range snapshot.ClassNames {
		offering := snapshot.Offerings.ByClass[name]

		if s.LV2 != "" && classifiers.IsKnownLV2(s.LV2) && !snapshot.Offerings.UniversalLV2[s.LV2] {
			if !offering.OffersLV2(s.LV2) {
				continue
			}
		}
		if s.OPT != "" && classifiers.IsKnownOPT(s.OPT) {
			if !offering.OffersOPT(s.OPT) {
				continue
			}
		}

		admissible = append(admissible, name)
	}

	return admissible
}
