// 참고 문서 best-effort 조회 서비스 (유사 평가, 정책 발췌)
//
// 계약: 어떤 실패도 호출자에게 전파되지 않는다 - 빈 목록으로 degrade.
// 품질은 낮아져도 생성 자체는 절대 막지 않는다 (enrichment이지 의존성이 아님).
//
// 벡터/full-text 검색은 동시에 fan-out하고, 생성 호출보다 확실히 짧은
// 독립 timeout을 건다 - 느린 조회가 critical path가 되지 않도록.

package service

import (
	"context"
	"log"
	"strings"
	"time"
)

type SnippetStore interface {
	SearchByEmbedding(ctx context.Context, vector []float32, limit int) ([]string, error)
	SearchByText(ctx context.Context, terms string, limit int) ([]string, error)
}

type QueryEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type ContextService struct {
	store    SnippetStore
	embedder QueryEmbedder
	timeout  time.Duration
}

func NewContextService(store SnippetStore, embedder QueryEmbedder, timeout time.Duration) *ContextService {
	return &ContextService{store: store, embedder: embedder, timeout: timeout}
}

// Fetch - query로 최대 limit건의 스니펫을 조회하고 각각 byteBudget 바이트로
// 절단해 반환한다. nil receiver(저장소 미구성)도 그냥 빈 결과.
func (s *ContextService) Fetch(ctx context.Context, query string, limit, byteBudget int) []string {
	if s == nil || s.store == nil || strings.TrimSpace(query) == "" {
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query = strings.ReplaceAll(query, "&", " ")

	vectorCh := make(chan []string, 1)
	textCh := make(chan []string, 1)

	go func() {
		vectorCh <- s.searchByVector(cctx, query, limit)
	}()
	go func() {
		docs, err := s.store.SearchByText(cctx, query, limit)
		if err != nil {
			log.Printf("[Context] text search failed: %v", err)
			textCh <- nil
			return
		}
		textCh <- docs
	}()

	// 벡터 결과 우선, 비어 있으면 full-text 결과 사용
	docs := <-vectorCh
	textDocs := <-textCh
	if len(docs) == 0 {
		docs = textDocs
	}

	return truncateAll(docs, byteBudget)
}

func (s *ContextService) searchByVector(ctx context.Context, query string, limit int) []string {
	if s.embedder == nil {
		return nil
	}
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		log.Printf("[Context] query embedding failed: %v", err)
		return nil
	}
	docs, err := s.store.SearchByEmbedding(ctx, vector, limit)
	if err != nil {
		log.Printf("[Context] vector search failed: %v", err)
		return nil
	}
	return docs
}

func truncateAll(docs []string, byteBudget int) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		if len(doc) > byteBudget {
			doc = doc[:byteBudget]
		}
		out = append(out, doc)
	}
	return out
}
