// 목격자 진술 분석 서비스: data URL 디코딩 → multi-part 메시지 구성 →
// 생성 호출 → section-tagged 파싱
//
// 파일 타입별 메시지 파트:
//   - image/*: inline 이미지 (vision) - image/jpg는 image/jpeg로 정규화
//   - application/pdf: inline document
//   - text/plain: 본문을 텍스트 파트로 포함

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/parse"
	"github.com/hopscotch/backend/internal/prompt"
)

const witnessMaxTokens = 1500

type WitnessService struct {
	ai Generator
}

func NewWitnessService(ai Generator) *WitnessService {
	return &WitnessService{ai: ai}
}

func (s *WitnessService) Analyze(ctx context.Context, req model.WitnessAnalysisRequest) (*model.WitnessAnalysis, error) {
	if req.File == nil || req.File.Content == "" {
		return nil, fmt.Errorf("%w: missing file data", apperr.ErrValidation)
	}

	parts, err := witnessParts(req.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	parts = append(parts, client.Part{Text: prompt.WitnessAnalysis(req.File.FileName, req.IncidentDescription)})

	text, err := s.ai.Generate(ctx, client.GenerateRequest{
		Parts:           parts,
		MaxOutputTokens: witnessMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	analysis := parse.WitnessAnalysis(text)
	return &analysis, nil
}

func witnessParts(file *model.WitnessFile) ([]client.Part, error) {
	payload, err := decodeDataURL(file.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 content: %v", err)
	}

	switch {
	case strings.HasPrefix(file.FileType, "image/"):
		mediaType := file.FileType
		if mediaType == "image/jpg" {
			mediaType = "image/jpeg"
		}
		return []client.Part{{MIMEType: mediaType, Data: payload}}, nil

	case file.FileType == "application/pdf":
		return []client.Part{{MIMEType: "application/pdf", Data: payload}}, nil

	case file.FileType == "text/plain":
		return []client.Part{{Text: "WITNESS STATEMENT TEXT:\n\n" + string(payload)}}, nil
	}

	return nil, fmt.Errorf("unsupported file type: %s", file.FileType)
}

// decodeDataURL - "data:<mime>;base64,<payload>" 형식과 bare base64 모두 허용
func decodeDataURL(content string) ([]byte, error) {
	if i := strings.Index(content, ","); i >= 0 {
		content = content[i+1:]
	}
	return base64.StdEncoding.DecodeString(content)
}
