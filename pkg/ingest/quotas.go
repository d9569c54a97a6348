package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amoreau/repartition/pkg/offerings"
)

var quotaFields = []string{"Class", "Code", "Quota"}

// parseQuotaRows turns raw quota sheet rows into offerings.QuotaRow
// values, rejecting rows that reference a class outside classNames so
// a typo in the quota tab fails loudly instead of being silently
// dropped by offerings.Build.
func parseQuotaRows(raw [][]interface{}, classNames []string) ([]offerings.QuotaRow, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	fieldIndexes, err := headerIndex(raw[0], quotaFields, quotaFields)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(classNames))
	for _, name := range classNames {
		known[name] = true
	}

	rows := make([]offerings.QuotaRow, 0, len(raw)-1)
	for rowNum, row := range raw[1:] {
		getField := func(name string) string {
			idx, ok := fieldIndexes[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
		}

		className := getField("Class")
		code := getField("Code")
		if className == "" || code == "" {
			continue
		}
		if !known[className] {
			return nil, fmt.Errorf("row %d: quota references unknown class %q", rowNum+2, className)
		}

		quota, err := strconv.Atoi(getField("Quota"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quota %q for class %q code %q: %w", rowNum+2, getField("Quota"), className, code, err)
		}

		rows = append(rows, offerings.QuotaRow{ClassName: className, Code: code, Quota: quota})
	}

	return rows, nil
}
