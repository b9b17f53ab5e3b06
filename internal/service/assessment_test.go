package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/normalize"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 10, 14, 30, 45, 0, time.UTC)
}

func TestBrainstorm(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"suggested_hazards\": [\"Wet floor\", \"Trapped fingers\"]}\n```"}
	svc := NewAssessmentService(gen, nil)

	res, err := svc.Brainstorm(context.Background(), model.HazardBrainstormRequest{
		AssessmentType: "Indoor Play",
		ActivityName:   "Soft play session",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.SuggestedHazards) != 2 || res.SuggestedHazards[0] != "Wet floor" {
		t.Fatalf("SuggestedHazards = %#v", res.SuggestedHazards)
	}
	if gen.lastReq.System == "" {
		t.Fatal("brainstorm must set a system instruction")
	}
}

func TestBrainstormMalformedDegrades(t *testing.T) {
	gen := &fakeGenerator{response: "hazards: wet floor, trapped fingers"}
	svc := NewAssessmentService(gen, nil)

	res, err := svc.Brainstorm(context.Background(), model.HazardBrainstormRequest{
		AssessmentType: "Indoor Play",
		ActivityName:   "Soft play session",
	})
	if err != nil {
		t.Fatalf("malformed output should degrade, got error: %v", err)
	}
	if res.SuggestedHazards == nil || len(res.SuggestedHazards) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", res.SuggestedHazards)
	}
}

func TestBrainstormValidation(t *testing.T) {
	svc := NewAssessmentService(&fakeGenerator{}, nil)
	_, err := svc.Brainstorm(context.Background(), model.HazardBrainstormRequest{ActivityName: "x"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	gen := &fakeGenerator{response: `{
		"assessment_type": "Outdoor Play",
		"activity_description": "Forest walk",
		"hazard_1": "Uneven ground",
		"pre_rating_1": "High",
		"unique_id": "model-invented",
		"review_date": "model-invented"
	}`}
	svc := NewAssessmentService(gen, nil)
	svc.now = fixedClock

	doc, err := svc.Generate(context.Background(), model.AssessmentGenerateRequest{
		AssessmentType: "Outdoor Play",
		ActivityName:   "Forest walk",
		AssessmentDate: "2025-06-10",
		AssessorName:   "Jane Smith",
		Hazards:        []string{"Uneven ground"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) != len(normalize.Keys()) {
		t.Fatalf("document not padded to full schema: %d keys", len(doc))
	}
	if doc["hazard_1"] != "Uneven ground" || doc["hazard_2"] != "" {
		t.Fatalf("hazard slots wrong: %q / %q", doc["hazard_1"], doc["hazard_2"])
	}
	// derived fields come from the server clock, never from model output
	if doc["unique_id"] != "250610-JS-143045" {
		t.Fatalf("unique_id = %q", doc["unique_id"])
	}
	if doc["review_date"] != "2026-06-10" {
		t.Fatalf("review_date = %q", doc["review_date"])
	}
	if !strings.Contains(gen.lastReq.Parts[0].Text, "250610-JS-143045") {
		t.Fatal("derived unique_id should be echoed into the prompt")
	}
}

func TestGenerateMalformedIsTerminal(t *testing.T) {
	gen := &fakeGenerator{response: "not json at all"}
	svc := NewAssessmentService(gen, nil)
	svc.now = fixedClock

	_, err := svc.Generate(context.Background(), model.AssessmentGenerateRequest{
		AssessmentType: "Outdoor Play",
		ActivityName:   "Forest walk",
		Hazards:        []string{"Uneven ground"},
	})
	if !errors.Is(err, apperr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestGenerateValidation(t *testing.T) {
	svc := NewAssessmentService(&fakeGenerator{}, nil)
	_, err := svc.Generate(context.Background(), model.AssessmentGenerateRequest{
		AssessmentType: "Outdoor Play",
		ActivityName:   "Forest walk",
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing hazards, got %v", err)
	}
}
