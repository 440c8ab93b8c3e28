package services

import (
	"testing"

	"RaacProms/models"
)

func statsRowFor(rows []StatsRow, label string) (StatsRow, bool) {
	for _, r := range rows {
		if r.Timepoint == label {
			return r, true
		}
	}
	return StatsRow{}, false
}

func TestComputeStats_MeansAndCompletion(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Joint: "hip"},
		{ID: "p2", Joint: "knee"},
	}
	measures := []models.Measure{
		{PatientID: "p1", Timepoint: "m1", OxfordScore: 30, WomacScore: 40},
		{PatientID: "p2", Timepoint: "m1", OxfordScore: 35, WomacScore: 50},
	}

	rows := computeStats(patients, measures, "")
	if len(rows) != len(models.Timepoints) {
		t.Fatalf("expected one row per timepoint, got %d", len(rows))
	}

	m1, ok := statsRowFor(rows, "1 month")
	if !ok {
		t.Fatal("missing 1 month row")
	}
	if m1.N != 2 {
		t.Errorf("m1 N = %d, want 2", m1.N)
	}
	if m1.AvgOxford != "32.5" {
		t.Errorf("m1 avg oxford = %q, want 32.5", m1.AvgOxford)
	}
	if m1.AvgWomac != "45.0" {
		t.Errorf("m1 avg womac = %q, want 45.0", m1.AvgWomac)
	}
	if m1.Completion != "100%" {
		t.Errorf("m1 completion = %q, want 100%%", m1.Completion)
	}
}

func TestComputeStats_EmptyCells(t *testing.T) {
	patients := []models.Patient{{ID: "p1", Joint: "hip"}}

	rows := computeStats(patients, nil, "")
	for _, row := range rows {
		if row.N != 0 {
			t.Errorf("%s N = %d, want 0", row.Timepoint, row.N)
		}
		if row.AvgOxford != "-" || row.AvgWomac != "-" {
			t.Errorf("%s averages without measures should be -, got %q/%q", row.Timepoint, row.AvgOxford, row.AvgWomac)
		}
		if row.Completion != "0%" {
			t.Errorf("%s completion = %q, want 0%%", row.Timepoint, row.Completion)
		}
	}
}

func TestComputeStats_NoPatients(t *testing.T) {
	rows := computeStats(nil, nil, "")
	for _, row := range rows {
		if row.Completion != "-" {
			t.Errorf("completion with an empty base should be -, got %q", row.Completion)
		}
	}
}

func TestComputeStats_JointFilter(t *testing.T) {
	patients := []models.Patient{
		{ID: "hip1", Joint: "hip"},
		{ID: "hip2", Joint: "hip"},
		{ID: "knee1", Joint: "knee"},
	}
	measures := []models.Measure{
		{PatientID: "hip1", Timepoint: "m6", OxfordScore: 40, WomacScore: 20},
		{PatientID: "knee1", Timepoint: "m6", OxfordScore: 10, WomacScore: 80},
	}

	rows := computeStats(patients, measures, "hip")
	m6, ok := statsRowFor(rows, "6 months")
	if !ok {
		t.Fatal("missing 6 months row")
	}
	if m6.N != 1 {
		t.Errorf("filtered N = %d, want 1", m6.N)
	}
	if m6.AvgOxford != "40.0" {
		t.Errorf("filtered avg oxford = %q, want 40.0", m6.AvgOxford)
	}
	// base is the two hip patients, one measured
	if m6.Completion != "50%" {
		t.Errorf("filtered completion = %q, want 50%%", m6.Completion)
	}
}

func TestComputeStats_CompletionRounds(t *testing.T) {
	patients := []models.Patient{
		{ID: "p1", Joint: "hip"}, {ID: "p2", Joint: "hip"}, {ID: "p3", Joint: "hip"},
	}
	measures := []models.Measure{
		{PatientID: "p1", Timepoint: "y1", OxfordScore: 10, WomacScore: 10},
	}

	rows := computeStats(patients, measures, "")
	y1, _ := statsRowFor(rows, "1 year")
	// 1/3 rounds to 33%
	if y1.Completion != "33%" {
		t.Errorf("completion = %q, want 33%%", y1.Completion)
	}
}
