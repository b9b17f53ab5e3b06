package model

type HazardBrainstormRequest struct {
	AssessmentType   string   `json:"assessmentType"`
	ActivityName     string   `json:"activityName"`
	Location         string   `json:"location"`
	Nursery          string   `json:"nursery"`
	PeopleAtRisk     []string `json:"peopleAtRisk"`
	Overview         string   `json:"overview"`
	PoliciesSelected []string `json:"policiesSelected"`
}

// HazardSuggestions - strict JSON contract의 저위험 출력.
// 파싱 실패 시 빈 목록으로 degrade (호출자가 수동 작성으로 진행).
type HazardSuggestions struct {
	SuggestedHazards []string `json:"suggested_hazards"`
}

type AssessmentGenerateRequest struct {
	AssessmentType   string   `json:"assessmentType"`
	ActivityName     string   `json:"activityName"`
	AssessmentDate   string   `json:"assessmentDate"`
	AssessorName     string   `json:"assessorName"`
	Location         string   `json:"location"`
	Nursery          string   `json:"nursery"`
	PeopleAtRisk     []string `json:"peopleAtRisk"`
	Hazards          []string `json:"hazards"`
	PoliciesSelected []string `json:"policiesSelected"`
	Overview         string   `json:"overview"`
}

// AssessmentDocument - 템플릿 병합 직전의 flat key-value 문서.
// normalize.Document를 거치면 고정 스키마의 모든 키가 항상 존재한다
// (빈 슬롯은 빈 문자열, 키 누락 없음).
type AssessmentDocument map[string]string
