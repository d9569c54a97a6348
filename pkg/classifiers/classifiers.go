// Package classifiers holds the canonical code lists the feasibility
// oracle and specialization rule consult: which LV2/OPT codes the
// cohort actually recognizes, and the default LV2 and specialized
// options of the specialization-preservation rule.
package classifiers

import "slices"

// KnownLV2 is the canonical set of second-language codes the source
// data model recognizes. An unrecognized LV2 code never restricts
// mobility — it is treated as if the student carried no LV2 at all.
var KnownLV2 = []string{"ESP", "ITA", "ALL", "ANG", "RUS", "CHI", "ARA", "POR"}

// KnownOPT is the canonical set of option codes the source data model
// recognizes.
var KnownOPT = []string{"LATIN", "GREC", "CHAV", "EURO", "ART", "THEA", "SPORT"}

// SpecializedOPT are the options whose seats must not be consumed by
// a student who carries none of them and whose LV2 is non-default,
// per the specialization-preservation rule. These are configuration
// constants, not universal truths — optimizer.Config carries its own
// copy so callers can override them without touching this package.
var SpecializedOPT = []string{"LATIN", "CHAV"}

// DefaultLV2 is the cohort's default second-language code, exempted
// from the specialization-preservation rule. optimizer.Config carries
// the authoritative, overridable copy that the oracle reads; IsKnownLV2
// does not consult this constant.
const DefaultLV2 = "ESP"

// IsKnownLV2 reports whether l is a recognized second-language code.
func IsKnownLV2(l string) bool {
	return l != "" && slices.Contains(KnownLV2, l)
}

// IsKnownOPT reports whether p is a recognized option code.
func IsKnownOPT(p string) bool {
	return p != "" && slices.Contains(KnownOPT, p)
}
