package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeSnippetStore struct {
	vectorDocs []string
	vectorErr  error
	textDocs   []string
	textErr    error
	lastTerms  string
}

func (f *fakeSnippetStore) SearchByEmbedding(ctx context.Context, vector []float32, limit int) ([]string, error) {
	return f.vectorDocs, f.vectorErr
}

func (f *fakeSnippetStore) SearchByText(ctx context.Context, terms string, limit int) ([]string, error) {
	f.lastTerms = terms
	return f.textDocs, f.textErr
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2}, nil
}

func TestFetchPrefersVectorResults(t *testing.T) {
	store := &fakeSnippetStore{
		vectorDocs: []string{"vector doc"},
		textDocs:   []string{"text doc"},
	}
	svc := NewContextService(store, &fakeEmbedder{}, time.Second)

	docs := svc.Fetch(context.Background(), "Outdoor Play", 3, 500)
	if len(docs) != 1 || docs[0] != "vector doc" {
		t.Fatalf("expected vector results preferred, got %#v", docs)
	}
}

func TestFetchFallsBackToTextSearch(t *testing.T) {
	store := &fakeSnippetStore{
		textDocs: []string{"text doc"},
	}
	svc := NewContextService(store, &fakeEmbedder{err: errors.New("quota exceeded")}, time.Second)

	docs := svc.Fetch(context.Background(), "Outdoor Play", 3, 500)
	if len(docs) != 1 || docs[0] != "text doc" {
		t.Fatalf("expected text fallback, got %#v", docs)
	}
}

func TestFetchAbsorbsAllFailures(t *testing.T) {
	store := &fakeSnippetStore{
		vectorErr: errors.New("connection refused"),
		textErr:   errors.New("connection refused"),
	}
	svc := NewContextService(store, &fakeEmbedder{}, time.Second)

	docs := svc.Fetch(context.Background(), "Outdoor Play", 3, 500)
	if len(docs) != 0 {
		t.Fatalf("failures should yield empty results, got %#v", docs)
	}
}

func TestFetchNilReceiver(t *testing.T) {
	var svc *ContextService
	if docs := svc.Fetch(context.Background(), "anything", 3, 500); docs != nil {
		t.Fatalf("nil service should return nil, got %#v", docs)
	}
}

func TestFetchTruncatesAndSanitizes(t *testing.T) {
	store := &fakeSnippetStore{
		textDocs: []string{strings.Repeat("a", 600)},
	}
	svc := NewContextService(store, nil, time.Second)

	docs := svc.Fetch(context.Background(), "Food & Kitchen", 3, 500)
	if len(docs) != 1 || len(docs[0]) != 500 {
		t.Fatalf("expected truncation to 500 bytes, got %d docs", len(docs))
	}
	if strings.Contains(store.lastTerms, "&") {
		t.Fatalf("ampersand should be stripped from search terms, got %q", store.lastTerms)
	}
}
