package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/llmservice"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// Classifier routes a query to DOC, WEB or HYBRID via a constrained
// three-way completion.
type Classifier struct {
	completer llmservice.Completer
}

// New returns a Classifier using the given completion backend.
func New(completer llmservice.Completer) *Classifier {
	return &Classifier{completer: completer}
}

// Classify labels the query. Model output outside the enumeration falls back
// to HYBRID, treating an unclassifiable query as needing maximal evidence.
// Only a transport-level completion failure is returned as an error.
func (c *Classifier) Classify(ctx context.Context, query string) (models.Classification, error) {
	prompt := fmt.Sprintf(models.RouterPromptTemplate, query)
	raw, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("classifier: completion failed: %w", err)
	}
	return decode(raw), nil
}

// decode maps model output onto the enumeration. Anything that is not
// exactly one of the three labels after normalization is HYBRID.
func decode(raw string) models.Classification {
	label := strings.ToUpper(strings.Trim(strings.TrimSpace(raw), "'\".:"))
	switch models.Classification(label) {
	case models.ClassDoc:
		return models.ClassDoc
	case models.ClassWeb:
		return models.ClassWeb
	case models.ClassHybrid:
		return models.ClassHybrid
	}
	log.Warn().Str("raw", raw).Msg("Unrecognized classification, defaulting to HYBRID")
	return models.ClassHybrid
}
