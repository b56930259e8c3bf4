package index

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/embedding"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// ErrNoChunks is returned when indexing produced zero valid vectors. Callers
// treat it as "no document evidence", not as a fatal failure.
var ErrNoChunks = errors.New("index: no chunks to index")

// Session is an in-memory similarity index over one query session's chunks.
// It exclusively owns the chunk embeddings and is discarded with the session;
// nothing is persisted and there is no incremental update path.
type Session struct {
	collection *chromem.Collection
	embedder   embeddings.Embedder
	chunks     []models.Chunk
}

// Build embeds every chunk and stores it in a fresh in-memory collection.
func Build(ctx context.Context, embedder embeddings.Embedder, chunks []models.Chunk) (*Session, error) {
	valid := make([]models.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Text != "" {
			valid = append(valid, chunk)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoChunks
	}

	vectors, err := embedding.EmbedChunks(ctx, embedder, valid)
	if err != nil {
		return nil, fmt.Errorf("index: embedding chunks: %w", err)
	}
	if len(vectors) != len(valid) {
		return nil, fmt.Errorf("index: embedder returned %d vectors for %d chunks", len(vectors), len(valid))
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection("session-"+uuid.NewString(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("index: creating collection: %w", err)
	}

	docs := make([]chromem.Document, len(valid))
	for i, chunk := range valid {
		docs[i] = chromem.Document{
			ID:      strconv.Itoa(i),
			Content: chunk.Text,
			Metadata: map[string]string{
				"source":  chunk.SourceID,
				"segment": strconv.Itoa(chunk.Segment),
			},
			Embedding: vectors[i],
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("index: adding documents: %w", err)
	}

	log.Debug().Int("chunks", len(valid)).Msg("Built session index")

	return &Session{collection: collection, embedder: embedder, chunks: valid}, nil
}

// Len reports how many chunks the index holds.
func (s *Session) Len() int {
	return len(s.chunks)
}

// Query returns the k chunks nearest to the query text, fewer if the index
// holds fewer. Ties on similarity fall back to original insertion order.
func (s *Session) Query(ctx context.Context, query string, k int) ([]models.Chunk, error) {
	if k <= 0 {
		return nil, nil
	}
	if k > len(s.chunks) {
		k = len(s.chunks)
	}

	queryVector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("index: embedding query: %w", err)
	}

	results, err := s.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: queryVector,
		NResults:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("index: querying collection: %w", err)
	}

	type hit struct {
		pos        int
		similarity float32
	}
	hits := make([]hit, 0, len(results))
	for _, res := range results {
		pos, err := strconv.Atoi(res.ID)
		if err != nil || pos < 0 || pos >= len(s.chunks) {
			continue
		}
		hits = append(hits, hit{pos: pos, similarity: res.Similarity})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].similarity != hits[j].similarity {
			return hits[i].similarity > hits[j].similarity
		}
		return hits[i].pos < hits[j].pos
	})

	chunks := make([]models.Chunk, len(hits))
	for i, h := range hits {
		chunks[i] = s.chunks[h.pos]
	}
	return chunks, nil
}
