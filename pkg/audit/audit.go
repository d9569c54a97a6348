// Package audit builds the post-run reporting view of an assignment:
// per-class totals, histograms, and the three offered/quota violation
// lists. It never mutates the assignment it is given.
package audit

import "github.com/amoreau/repartition/pkg/model"

// ClassTotals is one class's headline numbers.
type ClassTotals struct {
	ClassName   string
	Total       int
	FemaleCount int
	MaleCount   int
	LV2         map[string]int // code -> count
	OPT         map[string]int
	MovableCount int
	FixedCount   int
}

// OfferedViolation records a student placed in a class that does not
// offer the code they carry.
type OfferedViolation struct {
	ClassName string
	StudentID string
	Code      string
}

// QuotaDeviation records, per class and offered code, how far the
// realized headcount sits from the expected quota.
type QuotaDeviation struct {
	ClassName string
	Code      string
	Expected  int
	Realized  int
	Delta     int // Realized - Expected
}

// Report is the full audit output.
type Report struct {
	ByClass          []ClassTotals
	LV2Violations    []OfferedViolation
	OPTViolations    []OfferedViolation
	QuotaDeviations  []QuotaDeviation
}

// Run computes the report for the current state of a.
func Run(a *model.Assignment, offerings model.Offerings) Report {
	var report Report

	for _, className := range model.StableClassNames(a) {
		report.ByClass = append(report.ByClass, classTotals(a, className))
		report.LV2Violations = append(report.LV2Violations, lv2Violations(a, className, offerings)...)
		report.OPTViolations = append(report.OPTViolations, optViolations(a, className, offerings)...)
		report.QuotaDeviations = append(report.QuotaDeviations, quotaDeviations(a, className, offerings)...)
	}

	return report
}

func classTotals(a *model.Assignment, className string) ClassTotals {
	totals := ClassTotals{
		ClassName: className,
		LV2:       make(map[string]int),
		OPT:       make(map[string]int),
	}

	for _, s := range a.StudentsIn(className) {
		totals.Total++
		switch s.Gender {
		case model.GenderFemale:
			totals.FemaleCount++
		case model.GenderMale:
			totals.MaleCount++
		}
		if s.LV2 != "" {
			totals.LV2[s.LV2]++
		}
		if s.OPT != "" {
			totals.OPT[s.OPT]++
		}
		if s.IsFixed() {
			totals.FixedCount++
		} else {
			totals.MovableCount++
		}
	}

	return totals
}

// lv2Violations flags students whose recorded LV2 is not offered by
// their current class. A universal code is offered everywhere by
// definition and is skipped, mirroring the mobility and feasibility
// treatment of universal LV2 codes.
func lv2Violations(a *model.Assignment, className string, offerings model.Offerings) []OfferedViolation {
	var out []OfferedViolation
	offering := offerings.ByClass[className]
	for _, s := range a.StudentsIn(className) {
		if s.LV2 == "" || offerings.UniversalLV2[s.LV2] {
			continue
		}
		if !offering.OffersLV2(s.LV2) {
			out = append(out, OfferedViolation{ClassName: className, StudentID: s.ID, Code: s.LV2})
		}
	}
	return out
}

func optViolations(a *model.Assignment, className string, offerings model.Offerings) []OfferedViolation {
	var out []OfferedViolation
	offering := offerings.ByClass[className]
	for _, s := range a.StudentsIn(className) {
		if s.OPT == "" {
			continue
		}
		if !offering.OffersOPT(s.OPT) {
			out = append(out, OfferedViolation{ClassName: className, StudentID: s.ID, Code: s.OPT})
		}
	}
	return out
}

// quotaDeviations compares realized headcount per offered code against
// its expected quota for every code the class actually offers.
func quotaDeviations(a *model.Assignment, className string, offerings model.Offerings) []QuotaDeviation {
	offering := offerings.ByClass[className]
	realizedLV2 := make(map[string]int)
	realizedOPT := make(map[string]int)
	for _, s := range a.StudentsIn(className) {
		if s.LV2 != "" {
			realizedLV2[s.LV2]++
		}
		if s.OPT != "" {
			realizedOPT[s.OPT]++
		}
	}

	var out []QuotaDeviation
	for code, quota := range offering.QuotaLV2 {
		if quota <= 0 {
			continue
		}
		realized := realizedLV2[code]
		out = append(out, QuotaDeviation{ClassName: className, Code: code, Expected: quota, Realized: realized, Delta: realized - quota})
	}
	for code, quota := range offering.QuotaOPT {
		if quota <= 0 {
			continue
		}
		realized := realizedOPT[code]
		out = append(out, QuotaDeviation{ClassName: className, Code: code, Expected: quota, Realized: realized, Delta: realized - quota})
	}
	return out
}
