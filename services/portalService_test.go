package services

import (
	"testing"

	"RaacProms/models"
)

func TestAuthorizePortal(t *testing.T) {
	patient := &models.Patient{ID: "p1", Token: "tok-123"}

	if !authorizePortal(patient, "tok-123") {
		t.Error("exact token should be accepted")
	}
	if authorizePortal(patient, "tok-124") {
		t.Error("token differing by one character should be rejected")
	}
	if authorizePortal(patient, "tok-123 ") {
		t.Error("token with trailing whitespace should be rejected")
	}
	if authorizePortal(patient, "TOK-123") {
		t.Error("token comparison should be case sensitive")
	}
	if authorizePortal(patient, "") {
		t.Error("empty token should be rejected")
	}
	if authorizePortal(nil, "tok-123") {
		t.Error("unknown patient should be rejected")
	}
}

func TestBuildTimeline_FullCatalog(t *testing.T) {
	measures := []models.Measure{
		{PatientID: "p1", Timepoint: "m1", Date: "2025-02-01", OxfordScore: 30, WomacScore: 40},
	}

	timeline := buildTimeline(measures)

	if len(timeline) != len(models.Timepoints) {
		t.Fatalf("timeline should cover the whole catalog, got %d entries", len(timeline))
	}
	for _, entry := range timeline {
		if entry.Timepoint.ID == "m1" {
			if entry.Date != "2025-02-01" {
				t.Errorf("m1 date = %q", entry.Date)
			}
			if entry.OxfordScore == nil || *entry.OxfordScore != 30 {
				t.Errorf("m1 oxford score = %v, want 30", entry.OxfordScore)
			}
			if entry.WomacScore == nil || *entry.WomacScore != 40 {
				t.Errorf("m1 womac score = %v, want 40", entry.WomacScore)
			}
			continue
		}
		if entry.Date != "" || entry.OxfordScore != nil || entry.WomacScore != nil {
			t.Errorf("timepoint %q without a measure should be empty", entry.Timepoint.ID)
		}
	}
}

func TestBuildTimeline_ZeroScoresDistinguishable(t *testing.T) {
	measures := []models.Measure{
		{PatientID: "p1", Timepoint: "preop", Date: "2024-12-20", OxfordScore: 0, WomacScore: 0},
	}

	timeline := buildTimeline(measures)
	for _, entry := range timeline {
		if entry.Timepoint.ID != "preop" {
			continue
		}
		// a recorded zero must not look like a missing measure
		if entry.OxfordScore == nil || entry.WomacScore == nil {
			t.Error("recorded zero scores should be present, not nil")
		}
	}
}
