package service

import (
	"context"

	"github.com/hopscotch/backend/internal/client"
)

// Generator - 생성형 서비스 호출 인터페이스 (테스트에서 fake로 대체)
type Generator interface {
	Generate(ctx context.Context, req client.GenerateRequest) (string, error)
}
