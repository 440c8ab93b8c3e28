package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"RaacProms/models"
)

var csvNeedsQuoting = regexp.MustCompile(`["\n,]`)

// CsvEscape formats a single CSV field. A value containing a comma, a double
// quote or a newline is wrapped in quotes with inner quotes doubled. String
// slices are flattened with a pipe before the quoting rule is applied; nil
// becomes the empty string.
func CsvEscape(v interface{}) string {
	if v == nil {
		return ""
	}
	var s string
	switch val := v.(type) {
	case []string:
		s = strings.Join(val, "|")
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}
	if csvNeedsQuoting.MatchString(s) {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// CSVHeaders is the fixed header row of the measures export.
var CSVHeaders = []string{
	"patient_id", "last_name", "first_name", "email", "birth_date", "joint",
	"op_date", "timepoint", "date", "oxford", "womac", "comment",
}

// BuildMeasuresCSV renders one row per measure joined with the owning
// patient's fields. A measure whose patient is missing exports empty patient
// columns rather than failing.
func BuildMeasuresCSV(patients []models.Patient, measures []models.Measure) string {
	byID := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID] = p
	}

	lines := make([]string, 0, len(measures)+1)
	lines = append(lines, joinCSVRow(CSVHeaders))
	for _, m := range measures {
		p := byID[m.PatientID]
		row := []string{
			m.PatientID, p.LastName, p.FirstName, p.Email, p.BirthDate, p.Joint,
			p.OpDate, m.Timepoint, m.Date,
			strconv.Itoa(m.OxfordScore), strconv.Itoa(m.WomacScore), m.Comment,
		}
		lines = append(lines, joinCSVRow(row))
	}
	return strings.Join(lines, "\n")
}

func joinCSVRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = CsvEscape(f)
	}
	return strings.Join(escaped, ",")
}
