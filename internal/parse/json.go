// Strict JSON Contract 파서
//
// 하나의 JSON object만 허용. 모델이 붙이는 markdown 코드 펜스는 벗겨낸다.
// 실패 처리 방침은 호출자 책임: 고위험 플로우는 ErrParse를 그대로 전파,
// 저위험 플로우는 빈 fallback으로 degrade한다.

package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hopscotch/backend/internal/apperr"
)

// StrictJSON - 펜스를 제거하고 단일 JSON 문서로 unmarshal.
// 실패 시 apperr.ErrParse를 wrap한 오류 반환.
func StrictJSON(text string, v any) error {
	cleaned := StripFences(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrParse, err)
	}
	return nil
}

// StripFences - 선택적인 ``` / ```json 래퍼 제거
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractObject - 본문에서 가장 바깥 JSON object 구간을 잘라낸다.
// 모델이 object 앞뒤로 설명 문장을 붙이는 경우용 (저위험 플로우에서 사용).
func ExtractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
