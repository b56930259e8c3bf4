package synthesizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/llmservice"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// ErrSynthesis marks a failed answer generation. It is fatal for the
// current query only; nothing is retried.
var ErrSynthesis = errors.New("synthesizer: answer generation failed")

// Synthesizer turns an assembled context and a query into one grounded,
// citation-tagged answer. Citation correctness is delegated to the model's
// instruction following; nothing is verified here.
type Synthesizer struct {
	completer llmservice.Completer
}

// New returns a Synthesizer using the given completion backend.
func New(completer llmservice.Completer) *Synthesizer {
	return &Synthesizer{completer: completer}
}

// Synthesize issues a single completion over the context. An empty context
// is passed through as-is; the prompt contract makes the model report
// missing grounding instead of inventing facts.
func (s *Synthesizer) Synthesize(ctx context.Context, assembled models.AssembledContext, query string) (string, error) {
	prompt := fmt.Sprintf(models.AnswerPromptTemplate, assembled.Text, query)
	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	return strings.TrimSpace(answer), nil
}
