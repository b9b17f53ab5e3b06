// 사고 분석 서비스: prompt 구성 → 생성 호출 → section-tagged 파싱
//
// 파싱은 total이라 이 플로우에서 ParseError는 발생하지 않는다.
// 누락/이상 섹션은 타입 기본값으로 degrade.

package service

import (
	"context"
	"fmt"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/parse"
	"github.com/hopscotch/backend/internal/prompt"
)

const incidentMaxTokens = 1500

type IncidentService struct {
	ai Generator
}

func NewIncidentService(ai Generator) *IncidentService {
	return &IncidentService{ai: ai}
}

func (s *IncidentService) Analyze(ctx context.Context, req model.IncidentAnalysisRequest) (*model.IncidentAnalysis, error) {
	if req.IncidentData == nil {
		return nil, fmt.Errorf("%w: missing incident data", apperr.ErrValidation)
	}

	text, err := s.ai.Generate(ctx, client.GenerateRequest{
		Parts:           []client.Part{{Text: prompt.IncidentAnalysis(req.IncidentData, req.IncidentType)}},
		MaxOutputTokens: incidentMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	analysis := parse.IncidentAnalysis(text)
	return &analysis, nil
}
