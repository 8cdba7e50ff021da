package model_test

import (
	"testing"
	"time"

	"careerpilot/discovery-service/internal/model"
)

// ── Normalize ──────────────────────────────────────────────────────────────

func TestNormalize_TrimsTextFields(t *testing.T) {
	j := model.Job{
		ID:          "job-1",
		Title:       "  Software Engineer  ",
		Company:     " Apple Inc. ",
		Description: "\nBuild things\n",
		Location:    "\tCupertino ",
	}

	got := model.Normalize(j)

	if got.Title != "Software Engineer" {
		t.Errorf("Title = %q, want %q", got.Title, "Software Engineer")
	}
	if got.Company != "Apple Inc." {
		t.Errorf("Company = %q, want %q", got.Company, "Apple Inc.")
	}
	if got.Description != "Build things" {
		t.Errorf("Description = %q, want %q", got.Description, "Build things")
	}
	if got.Location != "Cupertino" {
		t.Errorf("Location = %q, want %q", got.Location, "Cupertino")
	}
}

func TestNormalize_LeavesOtherFieldsUntouched(t *testing.T) {
	posted := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	j := model.Job{
		ID:       "job-2",
		Title:    " x ",
		Salary:   &model.SalaryRange{Min: 50000, Max: 70000, Currency: "USD", Period: model.PayPeriodYearly},
		PostedAt: posted,
		URL:      "https://example.com/job2",
		Source:   model.SourceIndeed,
	}

	got := model.Normalize(j)

	if got.ID != j.ID {
		t.Errorf("ID changed: %q", got.ID)
	}
	if got.Salary != j.Salary {
		t.Error("Salary pointer changed")
	}
	if !got.PostedAt.Equal(posted) {
		t.Errorf("PostedAt changed: %v", got.PostedAt)
	}
	if got.URL != j.URL || got.Source != j.Source {
		t.Errorf("URL/Source changed: %q %q", got.URL, got.Source)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	jobs := []model.Job{
		{Title: "  Software Engineer  ", Company: " Apple Inc. "},
		{Title: "Clean Already", Company: "Acme", Description: "no padding"},
		{Title: "\n\ttabs and newlines\r\n", Location: " Remote "},
		{},
	}

	for _, j := range jobs {
		once := model.Normalize(j)
		twice := model.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %+v: %+v != %+v", j, once, twice)
		}
	}
}
