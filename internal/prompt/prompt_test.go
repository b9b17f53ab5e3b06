package prompt

import (
	"strings"
	"testing"

	"github.com/hopscotch/backend/internal/model"
)

func TestIncidentAnalysisPrompt(t *testing.T) {
	data := &model.IncidentData{
		PersonName:  "A. Child",
		Description: "Slipped near the water tray",
		Severity:    "minor",
	}
	p := IncidentAnalysis(data, "injury")

	for _, want := range []string{
		"Slipped near the water tray",
		"SUMMARY:",
		"OFSTED_RECOMMENDATION:",
		"RIDDOR_RECOMMENDATION:",
		"IMMEDIATE_ACTIONS:",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestIncidentAnalysisPromptAllergySection(t *testing.T) {
	base := &model.IncidentData{Description: "reaction after snack"}
	withAllergy := &model.IncidentData{
		Description:      "reaction after snack",
		AllergenInvolved: "peanuts",
		ReactionOccurred: "yes",
	}
	if strings.Contains(IncidentAnalysis(base, "injury"), "peanuts") {
		t.Fatal("allergy details should not leak into non-allergy prompts")
	}
	if !strings.Contains(IncidentAnalysis(withAllergy, "allergyBreach"), "peanuts") {
		t.Fatal("allergy breach prompt should include the allergen")
	}
}

func TestFSMSGuidanceSelection(t *testing.T) {
	if got := HazardGuidance(nil); got != "" {
		t.Fatalf("no policies should give empty guidance, got %q", got)
	}

	one := HazardGuidance([]string{"fsms-allergens"})
	if !strings.Contains(one, "14 declarable allergens") {
		t.Fatal("selected policy guidance missing")
	}
	if strings.Contains(one, "drinking straw") {
		t.Fatal("unselected policy guidance leaked")
	}

	all := HazardGuidance([]string{"fsms"})
	for _, want := range []string{"Critical Control Points", "14 declarable allergens", "drinking straw"} {
		if !strings.Contains(all, want) {
			t.Errorf("umbrella selection missing %q", want)
		}
	}
}

func TestAssessmentUserEchoesDerivedFields(t *testing.T) {
	req := model.AssessmentGenerateRequest{
		AssessmentType: "Outdoor Play",
		ActivityName:   "Forest walk",
		Hazards:        []string{"Uneven ground"},
	}
	p := AssessmentUser(req, "2025-06-10", "250610-JS-143045", "2026-06-10", []string{"snippet one"})

	for _, want := range []string{"250610-JS-143045", "2026-06-10", "Uneven ground", "snippet one"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBrainstormUserDefaults(t *testing.T) {
	req := model.HazardBrainstormRequest{
		AssessmentType: "Indoor Play",
		ActivityName:   "Soft play session",
	}
	p := BrainstormUser(req, nil)
	if !strings.Contains(p, "Soft play session") {
		t.Fatal("activity name missing from prompt")
	}
	if !strings.Contains(p, "Children, Staff") {
		t.Fatal("people-at-risk default missing")
	}
}
