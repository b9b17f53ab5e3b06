// 파이프라인 전 컴포넌트가 공유하는 오류 분류 정의
//
// 분류:
//   - ErrValidation: 필수 요청 필드 누락 (400, 외부 호출 전에 거부)
//   - ErrInvocation: 생성형 서비스 호출 실패 (500, 호출자가 재시도 가능)
//   - ErrParse: 모델 출력이 선언된 문법을 만족하지 않음 (500, 고위험 플로우 한정)
//   - TemplateError: 문서 템플릿/placeholder 결함 (500, 배포 문제 - 생성 오류와 구분)
//
// context 조회 실패는 오류로 분류하지 않는다 (빈 목록으로 degrade).

package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrInvocation = errors.New("generative service invocation failed")
	ErrParse      = errors.New("model response parse failed")
)

// TemplateError - 문제가 된 placeholder 이름을 함께 전달해야 해서
// sentinel 대신 타입으로 정의
type TemplateError struct {
	Placeholders []string
	Reason       string
}

func (e *TemplateError) Error() string {
	if len(e.Placeholders) > 0 {
		return fmt.Sprintf("template error: unresolved placeholders: %s", strings.Join(e.Placeholders, ", "))
	}
	return fmt.Sprintf("template error: %s", e.Reason)
}

// AsTemplateError - 핸들러에서 상태/응답 shape 분기용
func AsTemplateError(err error) (*TemplateError, bool) {
	var te *TemplateError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
