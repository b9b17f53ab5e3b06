package model

type ErrorResponse struct {
	Error string `json:"error"`
}

// TemplateErrorResponse - 템플릿 결함은 배포 문제라서
// 일반 생성 오류와 구분되는 shape로 내려준다
type TemplateErrorResponse struct {
	Error        string   `json:"error"`
	Placeholders []string `json:"placeholders,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
