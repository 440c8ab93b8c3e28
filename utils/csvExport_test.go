package utils

import (
	"strings"
	"testing"

	"RaacProms/models"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"plain string", "abc", "abc"},
		{"nil", nil, ""},
		{"comma", "a,b", `"a,b"`},
		{"quote", `a"b`, `"a""b"`},
		{"newline", "a\nb", "\"a\nb\""},
		{"string slice", []string{"a", "b"}, "a|b"},
		{"slice with comma", []string{"a,b", "c"}, `"a,b|c"`},
		{"number", 123, "123"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CsvEscape(tt.in); got != tt.want {
				t.Errorf("CsvEscape(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildMeasuresCSV(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", LastName: "Doe, Jr", FirstName: "Jane", Email: "jane@example.com",
			BirthDate: "1960-05-01", Joint: "hip", OpDate: "2025-01-01"},
	}
	measures := []models.Measure{
		{ID: "m1", PatientID: "p1", Timepoint: "m1", Date: "2025-02-01",
			OxfordScore: 30, WomacScore: 40, Comment: "walking well"},
	}

	out := BuildMeasuresCSV(patients, measures)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "patient_id,last_name,first_name,email,birth_date,joint,op_date,timepoint,date,oxford,womac,comment" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	want := `p1,"Doe, Jr",Jane,jane@example.com,1960-05-01,hip,2025-01-01,m1,2025-02-01,30,40,walking well`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestBuildMeasuresCSV_OrphanMeasure(t *testing.T) {
	measures := []models.Measure{
		{ID: "m1", PatientID: "ghost", Timepoint: "d2", Date: "2025-01-03",
			OxfordScore: 10, WomacScore: 20},
	}

	out := BuildMeasuresCSV(nil, measures)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[1] != "ghost,,,,,,,d2,2025-01-03,10,20," {
		t.Errorf("orphan row = %q", lines[1])
	}
}

func TestBuildMeasuresCSV_Empty(t *testing.T) {
	out := BuildMeasuresCSV(nil, nil)
	if strings.Contains(out, "\n") {
		t.Errorf("empty export should be the header only, got %q", out)
	}
}
