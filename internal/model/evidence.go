package model

// WitnessStatementRef - 증거 교차 검토에 첨부되는 목격자 진술 참조
// Analysis는 아직 분석 전이면 nil
type WitnessStatementRef struct {
	FileName string           `json:"fileName"`
	Analysis *WitnessAnalysis `json:"analysis"`
}

type EvidenceFileRef struct {
	FileName string `json:"fileName"`
}

type EvidenceReviewRequest struct {
	Description       string                `json:"description"`
	WitnessStatements []WitnessStatementRef `json:"witnessStatements"`
	Photos            []EvidenceFileRef     `json:"photos"`
	Documents         []EvidenceFileRef     `json:"documents"`
}

// EvidenceSuggestion - 설명과 증거 사이의 gap/inconsistency/clarification 제안
// ID는 모델 출력이 아니라 서버에서 부여한다
type EvidenceSuggestion struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Source     string `json:"source"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Severity   string `json:"severity"`
}

type EvidenceReviewResponse struct {
	Suggestions []EvidenceSuggestion `json:"suggestions"`
}
