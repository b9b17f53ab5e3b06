// 참고 문서(유사 평가, 정책 발췌) 조회 쿼리 정의
//
// documents 테이블: (id, content text, embedding vector)
// 임베딩이 있으면 벡터 유사도, 없으면 full-text 검색을 쓴다.

package db

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

func documentVectorQuery() string {
	return `
		SELECT content FROM documents
		ORDER BY embedding <=> $1
		LIMIT $2
	`
}

func documentTextQuery() string {
	return `
		SELECT content FROM documents
		WHERE to_tsvector('english', content) @@ plainto_tsquery('english', $1)
		LIMIT $2
	`
}

func (db *Postgres) SearchByEmbedding(ctx context.Context, vector []float32, limit int) ([]string, error) {
	rows, err := db.Pool.Query(ctx, documentVectorQuery(), pgvector.NewVector(vector), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContents(rows)
}

func (db *Postgres) SearchByText(ctx context.Context, terms string, limit int) ([]string, error) {
	rows, err := db.Pool.Query(ctx, documentTextQuery(), terms, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContents(rows)
}
