// 증거 교차 검토 서비스: 설명과 증거(진술 분석, 사진, 문서)를 대조해
// gap/inconsistency/clarification 제안 목록을 만든다.
//
// 저위험 플로우: JSON 파싱 실패는 빈 제안 목록으로 degrade
// (호출자는 제안 없이 진행하면 된다).

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/parse"
	"github.com/hopscotch/backend/internal/prompt"
)

const evidenceMaxTokens = 2000

type EvidenceService struct {
	ai Generator
}

func NewEvidenceService(ai Generator) *EvidenceService {
	return &EvidenceService{ai: ai}
}

func (s *EvidenceService) Review(ctx context.Context, req model.EvidenceReviewRequest) (*model.EvidenceReviewResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: missing incident description", apperr.ErrValidation)
	}

	text, err := s.ai.Generate(ctx, client.GenerateRequest{
		Parts: []client.Part{{
			Text: prompt.EvidenceReview(req.Description, req.WitnessStatements, req.Photos, req.Documents),
		}},
		MaxOutputTokens: evidenceMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.EvidenceReviewResponse{Suggestions: parseSuggestions(text)}, nil
}

func parseSuggestions(text string) []model.EvidenceSuggestion {
	raw, ok := parse.ExtractObject(text)
	if !ok {
		log.Printf("[Evidence] no JSON object in model response, returning empty suggestions")
		return []model.EvidenceSuggestion{}
	}

	var parsed struct {
		Suggestions []model.EvidenceSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("[Evidence] failed to parse suggestions, returning empty list: %v", err)
		return []model.EvidenceSuggestion{}
	}

	out := make([]model.EvidenceSuggestion, 0, len(parsed.Suggestions))
	for _, suggestion := range parsed.Suggestions {
		// ID는 모델이 아니라 서버가 부여한다
		suggestion.ID = uuid.NewString()
		out = append(out, suggestion)
	}
	return out
}
