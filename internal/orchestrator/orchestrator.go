package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/assembler"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/chunker"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/config"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/index"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/websearch"
)

// State is the orchestrator's position in the per-query pipeline. Every
// query walks Idle through Done; Error is terminal and reachable from any
// stage.
type State string

const (
	StateIdle         State = "IDLE"
	StateClassifying  State = "CLASSIFYING"
	StateRetrieving   State = "RETRIEVING"
	StateAssembling   State = "ASSEMBLING"
	StateSynthesizing State = "SYNTHESIZING"
	StateDone         State = "DONE"
	StateError        State = "ERROR"
)

// QueryClassifier labels a query DOC, WEB or HYBRID.
type QueryClassifier interface {
	Classify(ctx context.Context, query string) (models.Classification, error)
}

// DocumentIndex is a built per-session similarity index.
type DocumentIndex interface {
	Query(ctx context.Context, query string, k int) ([]models.Chunk, error)
	Len() int
}

// IndexBuilder constructs a fresh DocumentIndex from chunks. The index is
// rebuilt from scratch on every query cycle that includes documents.
type IndexBuilder func(ctx context.Context, chunks []models.Chunk) (DocumentIndex, error)

// NewIndexBuilder adapts the chromem-backed session index to IndexBuilder.
func NewIndexBuilder(embedder embeddings.Embedder) IndexBuilder {
	return func(ctx context.Context, chunks []models.Chunk) (DocumentIndex, error) {
		return index.Build(ctx, embedder, chunks)
	}
}

// AnswerSynthesizer produces the final cited answer.
type AnswerSynthesizer interface {
	Synthesize(ctx context.Context, assembled models.AssembledContext, query string) (string, error)
}

// Session is the explicit per-session context passed into every Run call.
// It replaces any ambient upload or index state; the orchestrator keeps no
// mutable state between queries.
type Session struct {
	Documents  []models.Document
	WebEnabled bool
}

// Orchestrator sequences classification, retrieval, assembly and synthesis
// for one query at a time. It is the only component that branches on the
// classification label and on evidence availability.
type Orchestrator struct {
	classifier   QueryClassifier
	searcher     websearch.Searcher
	synthesizer  AnswerSynthesizer
	buildIndex   IndexBuilder
	splitter     *chunker.Chunker
	topK         int
	webResults   int
	maxCtxChars  int
}

// New wires an Orchestrator. The searcher may be nil when web search is
// never enabled; every other collaborator is mandatory.
func New(
	classifier QueryClassifier,
	searcher websearch.Searcher,
	synthesizer AnswerSynthesizer,
	buildIndex IndexBuilder,
	splitter *chunker.Chunker,
	ragCfg config.RAGConfig,
) (*Orchestrator, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}
	if buildIndex == nil {
		return nil, ErrIndexBuilderRequired
	}
	if splitter == nil {
		return nil, ErrChunkerRequired
	}
	return &Orchestrator{
		classifier:  classifier,
		searcher:    searcher,
		synthesizer: synthesizer,
		buildIndex:  buildIndex,
		splitter:    splitter,
		topK:        ragCfg.TopK,
		webResults:  ragCfg.WebResults,
		maxCtxChars: ragCfg.MaxContextChars,
	}, nil
}

// Run processes one query end to end and returns a pure AnswerResult value
// for the presentation layer. Failures in optional evidence paths are
// downgraded to "that source is empty"; failures in classification or
// synthesis terminate the query. Nothing is retried.
func (o *Orchestrator) Run(ctx context.Context, sess *Session, query string) (*models.AnswerResult, error) {
	state := StateIdle
	if sess == nil || (len(sess.Documents) == 0 && !sess.WebEnabled) {
		// No evidence source at all: stay idle, make no external calls.
		return nil, ErrNoEvidenceSource
	}

	state = o.transition(state, StateClassifying)
	label, err := o.classifier.Classify(ctx, query)
	if err != nil {
		return nil, o.fail(state, err)
	}
	log.Debug().Str("classification", string(label)).Msg("Query classified")

	state = o.transition(state, StateRetrieving)
	docChunks := o.retrieveDocuments(ctx, sess, query)

	var (
		snippets []models.Snippet
		usedWeb  bool
	)
	if sess.WebEnabled && label.NeedsWeb() {
		snippets = o.retrieveWeb(ctx, query)
		usedWeb = len(snippets) > 0
	}

	state = o.transition(state, StateAssembling)
	merged := assembler.New(o.maxCtxChars).Assemble(
		assembler.FromChunks(docChunks),
		assembler.FromSnippets(snippets),
	)
	if merged.Empty() {
		log.Warn().Msg("No evidence retrieved, synthesizing from empty context")
	}

	state = o.transition(state, StateSynthesizing)
	answer, err := o.synthesizer.Synthesize(ctx, merged, query)
	if err != nil {
		return nil, o.fail(state, err)
	}
	o.transition(state, StateDone)

	return &models.AnswerResult{
		Text:           answer,
		Classification: label,
		UsedDocuments:  usedSources(docChunks),
		UsedWeb:        usedWeb,
		Evidence:       merged.Items,
	}, nil
}

// retrieveDocuments chunks the session's documents, rebuilds the index and
// queries it. Document retrieval fires whenever documents are present,
// independent of the classification label. Any failure on this path is
// downgraded to empty document evidence.
func (o *Orchestrator) retrieveDocuments(ctx context.Context, sess *Session, query string) []models.Chunk {
	if len(sess.Documents) == 0 {
		return nil
	}

	var chunks []models.Chunk
	for _, doc := range sess.Documents {
		pos := 0
		for _, segment := range doc.Segments {
			split := o.splitter.Split(segment.Text, doc.SourceID, segment.Number, pos)
			pos += len(split)
			chunks = append(chunks, split...)
		}
	}

	idx, err := o.buildIndex(ctx, chunks)
	if err != nil {
		log.Warn().Err(err).Msg("Document indexing failed, continuing without document evidence")
		return nil
	}
	retrieved, err := idx.Query(ctx, query, o.topK)
	if err != nil {
		log.Warn().Err(err).Msg("Document retrieval failed, continuing without document evidence")
		return nil
	}
	return retrieved
}

// retrieveWeb performs the bounded web search. Provider failures degrade to
// empty web evidence.
func (o *Orchestrator) retrieveWeb(ctx context.Context, query string) []models.Snippet {
	if o.searcher == nil {
		log.Warn().Msg("Web search enabled but no searcher configured")
		return nil
	}
	snippets, err := o.searcher.Search(ctx, query, o.webResults)
	if err != nil {
		log.Warn().Err(err).Msg("Web search failed, continuing without web evidence")
		return nil
	}
	return snippets
}

func (o *Orchestrator) transition(from, to State) State {
	log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("Orchestrator transition")
	return to
}

func (o *Orchestrator) fail(from State, err error) error {
	o.transition(from, StateError)
	return fmt.Errorf("query failed during %s: %w", from, err)
}

// usedSources returns the distinct source ids of the retrieved chunks in
// first-appearance order.
func usedSources(chunks []models.Chunk) []string {
	seen := make(map[string]bool, len(chunks))
	sources := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if !seen[chunk.SourceID] {
			seen[chunk.SourceID] = true
			sources = append(sources, chunk.SourceID)
		}
	}
	return sources
}
