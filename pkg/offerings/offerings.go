// Package offerings derives each class's elective offering from raw
// per-class quota rows, and the cohort's universal-LV2 set.
package offerings

import "github.com/amoreau/repartition/pkg/model"

// QuotaRow is one ingested (class, code, quota) row for either an LV2
// or OPT code. Ingestion (out of scope for the core) produces these
// from whatever sheet/file format it reads.
type QuotaRow struct {
	ClassName string
	Code      string
	Quota     int
}

// Build derives model.Offerings from the raw LV2 and OPT quota rows
// and the full list of destination class names.
//
// A class offers a code iff a quota row names it with Quota > 0; the
// allowed set additionally includes codes with Quota == 0 (offered in
// principle, no seats right now), so AllowedLV2/AllowedOPT distinguish
// "not taught here" from "taught here, full". OffersLV2/OffersOPT
// return false in both cases.
//
// The universal-LV2 set is every LV2 code offered, with positive
// quota, by *every* class name in classNames. This set can shrink
// unexpectedly as the number of classes varies between runs —
// callers that cache it across runs must rebuild it whenever
// the class roster changes.
func Build(lv2Quotas, optQuotas []QuotaRow, classNames []string) model.Offerings {
	byClass := make(map[string]model.ClassOffering, len(classNames))
	for _, name := range classNames {
		byClass[name] = model.ClassOffering{
			AllowedLV2: make(map[string]bool),
			AllowedOPT: make(map[string]bool),
			QuotaLV2:   make(map[string]int),
			QuotaOPT:   make(map[string]int),
		}
	}

	for _, row := range lv2Quotas {
		entry, ok := byClass[row.ClassName]
		if !ok {
			continue
		}
		entry.AllowedLV2[row.Code] = true
		entry.QuotaLV2[row.Code] = row.Quota
	}
	for _, row := range optQuotas {
		entry, ok := byClass[row.ClassName]
		if !ok {
			continue
		}
		entry.AllowedOPT[row.Code] = true
		entry.QuotaOPT[row.Code] = row.Quota
	}

	universal := make(map[string]bool)
	seen := make(map[string]int) // LV2 code -> count of classes offering it with quota>0
	for _, name := range classNames {
		for code, q := range byClass[name].QuotaLV2 {
			if q > 0 {
				seen[code]++
			}
		}
	}
	total := len(classNames)
	for code, count := range seen {
		if total > 0 && count == total {
			universal[code] = true
		}
	}

	return model.Offerings{ByClass: byClass, UniversalLV2: universal}
}
