package model

// WitnessFile - base64 data URL로 업로드된 목격자 진술 파일
//
// 지원 타입: image/* (vision), application/pdf (document), text/plain
type WitnessFile struct {
	Content  string `json:"content"`
	FileType string `json:"fileType"`
	FileName string `json:"fileName"`
}

type WitnessAnalysisRequest struct {
	File                *WitnessFile `json:"file"`
	IncidentDescription string       `json:"incidentDescription"`
}

type WitnessAnalysis struct {
	Summary           string   `json:"summary"`
	KeyFacts          []string `json:"keyFacts"`
	Timeline          []string `json:"timeline"`
	Inconsistencies   []string `json:"inconsistencies"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	CredibilityNotes  string   `json:"credibilityNotes"`
}
