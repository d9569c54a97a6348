package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amoreau/repartition/pkg/model"
)

// studentFields are the recognized header names on the roster tab.
// Order in the sheet does not matter; parseStudents resolves each
// column by name once, the way volunteer rows are resolved by name.
var studentFields = []string{
	"ID", "Family Name", "Given Name", "Gender", "Class",
	"COM", "TRA", "PART", "ABS", "LV2", "OPT", "Affinity", "Antinomy",
}

// parseStudents turns raw roster rows into students plus each
// student's current (pre-optimization) class, keyed by header name
// rather than position.
func parseStudents(raw [][]interface{}) ([]model.Student, map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("roster sheet is empty")
	}

	fieldIndexes, err := headerIndex(raw[0], studentFields, []string{"ID", "Family Name", "Given Name", "Class"})
	if err != nil {
		return nil, nil, err
	}

	students := make([]model.Student, 0, len(raw)-1)
	initialClass := make(map[string]string, len(raw)-1)
	seen := make(map[string]bool, len(raw)-1)

	for rowNum, row := range raw[1:] {
		getField := func(name string) string {
			idx, ok := fieldIndexes[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
		}

		id := getField("ID")
		if id == "" {
			continue
		}
		if seen[id] {
			return nil, nil, fmt.Errorf("row %d: duplicate student id %q", rowNum+2, id)
		}
		seen[id] = true

		className := getField("Class")
		if className == "" {
			return nil, nil, fmt.Errorf("row %d: student %q has no class assignment", rowNum+2, id)
		}

		student := model.NewStudent(id, getField("Family Name"), getField("Given Name"), parseGender(getField("Gender")))
		student.LV2 = getField("LV2")
		student.OPT = getField("OPT")
		student.Affinity = getField("Affinity")
		student.Antinomy = getField("Antinomy")

		if v, ok := parseScore(getField("COM")); ok {
			student.SetCOM(v)
		}
		if v, ok := parseScore(getField("TRA")); ok {
			student.SetTRA(v)
		}
		if v, ok := parseScore(getField("PART")); ok {
			student.SetPART(v)
		}
		if v, ok := parseScore(getField("ABS")); ok {
			student.SetABS(v)
		}

		students = append(students, student)
		initialClass[id] = className
	}

	return students, initialClass, nil
}

func parseGender(raw string) model.Gender {
	switch strings.ToUpper(raw) {
	case "F":
		return model.GenderFemale
	case "M":
		return model.GenderMale
	default:
		return model.GenderUnknown
	}
}

func parseScore(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// headerIndex maps recognized header names to column positions,
// erroring if any of required is missing from the header row.
func headerIndex(headerRow []interface{}, recognized, required []string) (map[string]int, error) {
	indexes := make(map[string]int, len(recognized))
	for i, cell := range headerRow {
		name := strings.TrimSpace(fmt.Sprintf("%v", cell))
		for _, field := range recognized {
			if strings.EqualFold(name, field) {
				indexes[field] = i
				break
			}
		}
	}
	for _, field := range required {
		if _, ok := indexes[field]; !ok {
			return nil, fmt.Errorf("missing required column %q", field)
		}
	}
	return indexes, nil
}
