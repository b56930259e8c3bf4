package assembler

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// Assembler merges document and web evidence into one annotated context.
// maxContextChars bounds the assembled text; zero means unbounded.
type Assembler struct {
	maxContextChars int
}

// New returns an Assembler.
func New(maxContextChars int) *Assembler {
	return &Assembler{maxContextChars: maxContextChars}
}

// FromChunks normalizes retrieved chunks into evidence items, keyed by
// source file name.
func FromChunks(chunks []models.Chunk) []models.EvidenceItem {
	items := make([]models.EvidenceItem, 0, len(chunks))
	for _, chunk := range chunks {
		items = append(items, models.EvidenceItem{
			Content:     chunk.Text,
			Origin:      models.OriginDocument,
			CitationKey: chunk.SourceID,
		})
	}
	return items
}

// FromSnippets normalizes web snippets into evidence items, keyed by URL.
func FromSnippets(snippets []models.Snippet) []models.EvidenceItem {
	items := make([]models.EvidenceItem, 0, len(snippets))
	for _, snippet := range snippets {
		items = append(items, models.EvidenceItem{
			Content:     snippet.Content,
			Origin:      models.OriginWeb,
			CitationKey: snippet.URL,
		})
	}
	return items
}

// Assemble concatenates all evidence, each item prefixed with its citation
// tag. All document evidence precedes all web evidence and duplicates pass
// through untouched. When a context budget is set, whole items are dropped
// from the tail once the budget is exceeded.
func (a *Assembler) Assemble(docEvidence, webEvidence []models.EvidenceItem) models.AssembledContext {
	items := make([]models.EvidenceItem, 0, len(docEvidence)+len(webEvidence))
	items = append(items, docEvidence...)
	items = append(items, webEvidence...)

	var (
		kept  []models.EvidenceItem
		text  strings.Builder
		total int
	)
	for i, item := range items {
		line := tag(item) + " " + item.Content
		if a.maxContextChars > 0 && i > 0 && total+len(line) > a.maxContextChars {
			log.Warn().
				Int("dropped", len(items)-i).
				Int("budget", a.maxContextChars).
				Msg("Context budget exceeded, dropping tail evidence")
			break
		}
		if len(kept) > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(line)
		total += len(line)
		kept = append(kept, item)
	}

	return models.AssembledContext{Text: text.String(), Items: kept}
}

func tag(item models.EvidenceItem) string {
	if item.Origin == models.OriginWeb {
		return fmt.Sprintf("[Web: %s]", item.CitationKey)
	}
	return fmt.Sprintf("[Doc: %s]", item.CitationKey)
}
