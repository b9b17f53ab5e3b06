// 문서 생성 서비스: NormalizedDocument → .docx 병합 → 다운로드 산출물
//
// 입력은 다시 한 번 정규화를 거친다 (멱등이라 이미 정규화된 입력도 동일).
// 템플릿 결함은 TemplateError로 그대로 전파 - 생성 경로 오류와 구분된다.

package service

import (
	"fmt"
	"time"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/docx"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/normalize"
)

type DocumentService struct {
	assembler *docx.Assembler
	now       func() time.Time
}

func NewDocumentService(assembler *docx.Assembler) *DocumentService {
	return &DocumentService{assembler: assembler, now: time.Now}
}

func (s *DocumentService) Generate(req model.DocumentGenerateRequest) (*model.GeneratedArtifact, error) {
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: missing assessment data", apperr.ErrValidation)
	}

	doc := normalize.Document(req.Data)

	data, err := s.assembler.Render(doc)
	if err != nil {
		return nil, err
	}

	fileName := req.FileName
	if fileName == "" {
		activity := doc["activity_description"]
		if activity == "" {
			activity = "General"
		}
		date := doc["assessment_date"]
		if date == "" {
			date = s.now().Format("2006-01-02")
		}
		fileName = fmt.Sprintf("Risk Assessment - %s - %s.docx", activity, date)
	}

	return &model.GeneratedArtifact{
		Data:        data,
		FileName:    fileName,
		ContentType: docx.ContentType,
	}, nil
}
