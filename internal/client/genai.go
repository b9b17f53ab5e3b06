// Google GenAI 생성/임베딩 클라이언트 정의
//
// 환경변수:
//   - AI_API_KEY: Gemini API Key
//   - AI_MODEL: 생성 모델 (default: gemini-2.0-flash)
//   - AI_EMBEDDING_MODEL: context 검색용 임베딩 모델 (default: text-embedding-004)
//
// 호출당 1회 왕복, 내부 재시도 없음. 도달 불가/quota/timeout은 전부
// apperr.ErrInvocation으로 분류되어 호출자에게 그대로 전파된다.

package client

import (
	"context"
	"fmt"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/config"
	"google.golang.org/genai"
)

// Part - 메시지 파트. Text 또는 (MIMEType, Data) 중 하나만 채운다.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

// GenerateRequest - 단일 role-structured 메시지 입력
type GenerateRequest struct {
	System          string
	Parts           []Part
	MaxOutputTokens int32
}

type GenAIClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGenAIClient(cfg config.AIConfig) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &GenAIClient{client: client, model: cfg.Model, embeddingModel: cfg.EmbeddingModel}, nil
}

// Generate - user role 메시지 1건을 보내고 응답의 첫 텍스트 블록을 반환
func (c *GenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.MIMEType != "" {
			parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	genCfg := &genai.GenerateContentConfig{}
	if req.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvocation, err)
	}

	text := firstText(res)
	if text == "" {
		return "", fmt.Errorf("%w: response contains no text block", apperr.ErrInvocation)
	}
	return text, nil
}

func firstText(res *genai.GenerateContentResponse) string {
	for _, cand := range res.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// EmbedText - context 검색 쿼리 임베딩.
// best-effort 경로에서만 쓰이므로 invocation 오류로 분류하지 않는다.
func (c *GenAIClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	res, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, fmt.Errorf("empty embedding result")
	}
	return res.Embeddings[0].Values, nil
}
