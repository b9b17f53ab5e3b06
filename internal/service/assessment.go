// 위험성 평가 서비스: hazard brainstorm(저위험)과 전체 초안 생성(고위험)
//
// Brainstorm: JSON 파싱 실패 시 빈 목록으로 degrade - 사용자는 수동 작성으로 진행.
// Generate: 출력이 compliance 문서로 그대로 흘러가므로 파싱 실패는 종단 오류.
//   잘못 파싱한 내용으로 문서를 조립하는 일은 절대 없어야 한다.
//
// unique_id와 review_date는 모델 출력과 무관하게 서버에서 계산해 덮어쓴다.

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/normalize"
	"github.com/hopscotch/backend/internal/parse"
	"github.com/hopscotch/backend/internal/prompt"
)

const (
	brainstormMaxTokens = 1000
	assessmentMaxTokens = 4000

	// context 스니펫 수/바이트 예산 (플로우별)
	brainstormSnippetLimit  = 3
	brainstormSnippetBudget = 500
	assessmentSnippetLimit  = 5
	assessmentSnippetBudget = 1000
)

type AssessmentService struct {
	ai      Generator
	context *ContextService
	now     func() time.Time
}

func NewAssessmentService(ai Generator, contextService *ContextService) *AssessmentService {
	return &AssessmentService{ai: ai, context: contextService, now: time.Now}
}

func (s *AssessmentService) Brainstorm(ctx context.Context, req model.HazardBrainstormRequest) (*model.HazardSuggestions, error) {
	if req.AssessmentType == "" || req.ActivityName == "" {
		return nil, fmt.Errorf("%w: missing required fields: assessmentType and activityName", apperr.ErrValidation)
	}

	snippets := s.context.Fetch(ctx, req.AssessmentType, brainstormSnippetLimit, brainstormSnippetBudget)

	text, err := s.ai.Generate(ctx, client.GenerateRequest{
		System:          prompt.BrainstormSystem,
		Parts:           []client.Part{{Text: prompt.BrainstormUser(req, snippets)}},
		MaxOutputTokens: brainstormMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var suggestions model.HazardSuggestions
	if err := parse.StrictJSON(text, &suggestions); err != nil {
		log.Printf("[Assessment] hazard brainstorm parse failed, returning empty list: %v", err)
		return &model.HazardSuggestions{SuggestedHazards: []string{}}, nil
	}
	if suggestions.SuggestedHazards == nil {
		suggestions.SuggestedHazards = []string{}
	}
	return &suggestions, nil
}

func (s *AssessmentService) Generate(ctx context.Context, req model.AssessmentGenerateRequest) (model.AssessmentDocument, error) {
	if req.AssessmentType == "" || req.ActivityName == "" || len(req.Hazards) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", apperr.ErrValidation)
	}

	now := s.now()
	assessmentDate := now
	if parsed, err := time.Parse("2006-01-02", req.AssessmentDate); err == nil {
		assessmentDate = parsed
	}
	dateStr := assessmentDate.Format("2006-01-02")

	uniqueID := normalize.UniqueID(assessmentDate, req.AssessorName, now)
	reviewDate := normalize.ReviewDate(assessmentDate)

	snippets := s.context.Fetch(ctx, req.AssessmentType, assessmentSnippetLimit, assessmentSnippetBudget)

	text, err := s.ai.Generate(ctx, client.GenerateRequest{
		System:          prompt.AssessmentSystem,
		Parts:           []client.Part{{Text: prompt.AssessmentUser(req, dateStr, uniqueID, reviewDate, snippets)}},
		MaxOutputTokens: assessmentMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := parse.StrictJSON(text, &raw); err != nil {
		// 고위험 플로우: 부분/왜곡 출력 없이 그대로 전파
		return nil, err
	}

	doc := normalize.Document(stringifyValues(raw))
	doc["unique_id"] = uniqueID
	doc["review_date"] = reviewDate
	return doc, nil
}

func stringifyValues(raw map[string]any) model.AssessmentDocument {
	out := make(model.AssessmentDocument, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprintf("%v", v)
		}
	}
	return out
}
