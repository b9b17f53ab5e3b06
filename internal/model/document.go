package model

type DocumentGenerateRequest struct {
	Data     AssessmentDocument `json:"data"`
	FileName string             `json:"fileName"`
}

// GeneratedArtifact - DocumentAssembler만 생성하는 불변 결과물
type GeneratedArtifact struct {
	Data        []byte
	FileName    string
	ContentType string
}
