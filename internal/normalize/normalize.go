// ParsedRecord를 고정 스키마의 NormalizedDocument로 패딩하고
// 파생 필드(unique_id, review_date)를 계산한다.
//
// 파생 필드는 모델 출력과 무관하게 서버에서 계산한다 - 결정적이고 감사 가능.
// 동일 시각(초 단위) 호출의 unique_id 충돌은 허용 범위로 두고 방어하지 않는다.

package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/hopscotch/backend/internal/model"
)

// HazardSlots - 배포 템플릿의 hazard placeholder 그룹 수.
// 템플릿 버전에 묶인 상수라서 설정으로 빼지 않는다
// (템플릿과 어긋나면 placeholder 불일치가 조용히 발생).
const HazardSlots = 10

var headerKeys = []string{
	"assessment_type",
	"assessment_date",
	"assessor_name",
	"unique_id",
	"activity_description",
	"location",
	"people_at_risk",
	"review_date",
	"safe_system_of_work",
}

// 슬롯별 동반 필드 6종
var hazardPrefixes = []string{
	"hazard",
	"pre_rating",
	"control_measures",
	"post_rating",
	"additional_controls",
	"reassess_rating",
}

// Keys - 고정 문서 스키마의 전체 키 목록 (결정적 순서)
func Keys() []string {
	keys := make([]string, 0, len(headerKeys)+HazardSlots*len(hazardPrefixes))
	keys = append(keys, headerKeys...)
	for i := 1; i <= HazardSlots; i++ {
		for _, p := range hazardPrefixes {
			keys = append(keys, fmt.Sprintf("%s_%d", p, i))
		}
	}
	return keys
}

// Document - src를 고정 cardinality 스키마로 패딩한다.
// 없는 슬롯의 동반 필드는 전부 빈 문자열로 존재하고, 스키마 밖 키는 버린다.
// total이며 멱등: 이미 정규화된 문서를 다시 넣어도 같은 문서가 나온다.
func Document(src model.AssessmentDocument) model.AssessmentDocument {
	out := make(model.AssessmentDocument, len(headerKeys)+HazardSlots*len(hazardPrefixes))
	for _, key := range Keys() {
		out[key] = src[key]
	}
	return out
}

// UniqueID - (평가일, 작성자 이니셜, 생성 시각)으로 구성된 식별자
// 형식: YYMMDD-INITIALS-HHMMSS
func UniqueID(assessmentDate time.Time, assessorName string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s",
		assessmentDate.Format("060102"),
		Initials(assessorName),
		now.Format("150405"),
	)
}

// Initials - 이름 각 단어의 첫 글자를 대문자로. 빈 이름은 "XX".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "XX"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteRune(unicode.ToUpper([]rune(w)[0]))
	}
	return b.String()
}

// ReviewDate - 평가일로부터 정확히 1년 뒤 (ISO date).
// 윤년 2/29는 Go AddDate 규칙대로 3/1로 넘어간다.
func ReviewDate(assessmentDate time.Time) string {
	return assessmentDate.AddDate(1, 0, 0).Format("2006-01-02")
}
