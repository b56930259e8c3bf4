// Package mock provides test doubles for the external collaborators:
// the embedding provider, the completion model and the web search provider.
// Behavior is injected through function fields; defaults are deterministic
// so tests stay reproducible.
package mock

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// Embedder is a test double for embeddings.Embedder.
type Embedder struct {
	EmbedDocumentsFunc func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFunc     func(ctx context.Context, text string) ([]float32, error)

	Calls int
}

// NewEmbedder returns an embedder producing deterministic hash-derived
// vectors, so identical text always embeds identically.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

func (m *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	m.Calls++
	if m.EmbedDocumentsFunc != nil {
		return m.EmbedDocumentsFunc(ctx, texts)
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = deterministicVector(text, 32)
	}
	return vectors, nil
}

func (m *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	m.Calls++
	if m.EmbedQueryFunc != nil {
		return m.EmbedQueryFunc(ctx, text)
	}
	return deterministicVector(text, 32), nil
}

// Completer is a test double for llmservice.Completer. Prompts are recorded
// for assertions on prompt construction.
type Completer struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	Prompts []string
}

func (m *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "", nil
}

// Searcher is a test double for websearch.Searcher.
type Searcher struct {
	SearchFunc func(ctx context.Context, query string, k int) ([]models.Snippet, error)

	Calls int
}

func (m *Searcher) Search(ctx context.Context, query string, k int) ([]models.Snippet, error) {
	m.Calls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, k)
	}
	return nil, nil
}

// deterministicVector derives a unit-ish vector from the FNV hash of text.
func deterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		seed = seed*1664525 + 1013904223
		vector[i] = float32(seed%1000)/1000.0 + 0.001
	}

	var sumSquares float32
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		inv := float32(1.0 / math.Sqrt(float64(sumSquares)))
		for i := range vector {
			vector[i] *= inv
		}
	}
	return vector
}
