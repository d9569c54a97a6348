// Package validate runs the post-optimization duplication audit: it
// checks that no antinomy group ends up doubled into the same class,
// which the feasibility oracle is supposed to prevent during a run but
// which a caller may still want asserted independently at the end.
package validate

import "github.com/amoreau/repartition/pkg/model"

// Violation reports one antinomy code that appears more than once in
// a single class.
type Violation struct {
	ClassName    string
	AntinomyCode string
	Count        int
	Students     []string // display names, in class membership order
}

// Report is the outcome of one duplication audit.
type Report struct {
	OK          bool
	Violations  []Violation
	NotChecked  bool // true when the antinomy attribute is absent from the dataset
}

// Run counts, per class, how many members share each non-empty
// antinomy code and flags any code appearing more than once. When
// hasAntinomyAttribute is false the dataset never recorded antinomy
// groups at all, so the audit cannot mean anything: Run returns a
// report with NotChecked set and OK left true, rather than silently
// passing on data it never looked at.
func Run(a *model.Assignment, hasAntinomyAttribute bool) Report {
	if !hasAntinomyAttribute {
		return Report{OK: true, NotChecked: true}
	}

	var violations []Violation
	for _, className := range model.StableClassNames(a) {
		byCode := make(map[string][]string)
		for _, s := range a.StudentsIn(className) {
			if s.Antinomy == "" {
				continue
			}
			byCode[s.Antinomy] = append(byCode[s.Antinomy], s.DisplayName())
		}

		for _, code := range sortedKeys(byCode) {
			names := byCode[code]
			if len(names) > 1 {
				violations = append(violations, Violation{
					ClassName:    className,
					AntinomyCode: code,
					Count:        len(names),
					Students:     names,
				})
			}
		}
	}

	return Report{OK: len(violations) == 0, Violations: violations}
}

// sortedKeys gives violation ordering that doesn't depend on map
// iteration, without pulling in a full antinomy-code registry.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
