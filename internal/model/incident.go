package model

// IncidentData - 사고 기록 폼에서 넘어오는 자유 서술 + 분류 정보
type IncidentData struct {
	Nursery                  string   `json:"nursery"`
	IncidentDate             string   `json:"incidentDate"`
	IncidentTime             string   `json:"incidentTime"`
	PersonName               string   `json:"personName"`
	PersonType               string   `json:"personType"`
	PersonAge                string   `json:"personAge"`
	Location                 string   `json:"location"`
	LocationDetail           string   `json:"locationDetail"`
	Description              string   `json:"description"`
	InjuryTypes              []string `json:"injuryTypes"`
	InjuryCauses             []string `json:"injuryCauses"`
	BodyAreas                []string `json:"bodyAreas"`
	Severity                 string   `json:"severity"`
	FirstAidGiven            string   `json:"firstAidGiven"`
	FirstAidDetails          string   `json:"firstAidDetails"`
	MedicalAttentionRequired string   `json:"medicalAttentionRequired"`
	HospitalAttendance       string   `json:"hospitalAttendance"`

	// allergyBreach 분류에서만 채워지는 필드
	AllergenInvolved string `json:"allergenInvolved"`
	ReactionOccurred string `json:"reactionOccurred"`
	ReactionDetails  string `json:"reactionDetails"`
}

type IncidentAnalysisRequest struct {
	IncidentData *IncidentData `json:"incidentData"`
	IncidentType string        `json:"incidentType"`
}

// IncidentAnalysis - section-tagged 응답에서 추출한 전체 정의 레코드.
// 파싱이 실패한 섹션도 타입 기본값으로 채워진다 (필드 누락 없음).
type IncidentAnalysis struct {
	Summary              string   `json:"summary"`
	OfstedRecommendation string   `json:"ofstedRecommendation"`
	OfstedReasoning      string   `json:"ofstedReasoning"`
	RiddorRecommendation string   `json:"riddorRecommendation"`
	RiddorReasoning      string   `json:"riddorReasoning"`
	ImmediateActions     []string `json:"immediateActions"`
	PreventiveMeasures   []string `json:"preventiveMeasures"`
	AdditionalConcerns   string   `json:"additionalConcerns"`
}
