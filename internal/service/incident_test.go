package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/model"
)

type fakeGenerator struct {
	response string
	err      error
	lastReq  client.GenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req client.GenerateRequest) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func TestIncidentAnalyze(t *testing.T) {
	gen := &fakeGenerator{response: "SUMMARY: A child slipped by the water tray.\n" +
		"OFSTED_RECOMMENDATION: no\n" +
		"OFSTED_REASONING: Minor injury, no threshold met.\n" +
		"RIDDOR_RECOMMENDATION: Definitely\n" +
		"IMMEDIATE_ACTIONS:\n- Dry the floor\n" +
		"PREVENTIVE_MEASURES:\n- Add anti-slip mats\n"}
	svc := NewIncidentService(gen)

	analysis, err := svc.Analyze(context.Background(), model.IncidentAnalysisRequest{
		IncidentData: &model.IncidentData{Description: "slipped near water tray"},
		IncidentType: "injury",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.OfstedRecommendation != "no" {
		t.Fatalf("OfstedRecommendation = %q", analysis.OfstedRecommendation)
	}
	if analysis.RiddorRecommendation != "uncertain" {
		t.Fatalf("off-list value should collapse to uncertain, got %q", analysis.RiddorRecommendation)
	}
	if len(analysis.ImmediateActions) != 1 || analysis.ImmediateActions[0] != "Dry the floor" {
		t.Fatalf("ImmediateActions = %#v", analysis.ImmediateActions)
	}
}

func TestIncidentAnalyzeMissingData(t *testing.T) {
	svc := NewIncidentService(&fakeGenerator{})
	_, err := svc.Analyze(context.Background(), model.IncidentAnalysisRequest{IncidentType: "injury"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestIncidentAnalyzeInvocationError(t *testing.T) {
	gen := &fakeGenerator{err: apperr.ErrInvocation}
	svc := NewIncidentService(gen)
	_, err := svc.Analyze(context.Background(), model.IncidentAnalysisRequest{
		IncidentData: &model.IncidentData{},
	})
	if !errors.Is(err, apperr.ErrInvocation) {
		t.Fatalf("expected ErrInvocation, got %v", err)
	}
}
