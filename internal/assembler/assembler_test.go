package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

func docItem(content, source string) models.EvidenceItem {
	return models.EvidenceItem{Content: content, Origin: models.OriginDocument, CitationKey: source}
}

func webItem(content, url string) models.EvidenceItem {
	return models.EvidenceItem{Content: content, Origin: models.OriginWeb, CitationKey: url}
}

func TestFromChunks(t *testing.T) {
	chunks := []models.Chunk{
		{Text: "alpha", SourceID: "a.txt", Position: 0},
		{Text: "beta", SourceID: "b.pdf", Position: 3},
	}
	items := FromChunks(chunks)
	require.Len(t, items, 2)
	assert.Equal(t, docItem("alpha", "a.txt"), items[0])
	assert.Equal(t, docItem("beta", "b.pdf"), items[1])
}

func TestFromSnippets(t *testing.T) {
	snippets := []models.Snippet{{Content: "rates rose", URL: "https://news.example/rates"}}
	items := FromSnippets(snippets)
	require.Len(t, items, 1)
	assert.Equal(t, webItem("rates rose", "https://news.example/rates"), items[0])
}

func TestAssemble_DocumentsPrecedeWeb(t *testing.T) {
	a := New(0)
	ctxt := a.Assemble(
		[]models.EvidenceItem{docItem("d1", "a.txt"), docItem("d2", "b.txt")},
		[]models.EvidenceItem{webItem("w1", "https://x"), webItem("w2", "https://y")},
	)

	require.Len(t, ctxt.Items, 4)
	assert.Equal(t, models.OriginDocument, ctxt.Items[0].Origin)
	assert.Equal(t, models.OriginDocument, ctxt.Items[1].Origin)
	assert.Equal(t, models.OriginWeb, ctxt.Items[2].Origin)
	assert.Equal(t, models.OriginWeb, ctxt.Items[3].Origin)

	docIdx := strings.Index(ctxt.Text, "[Doc: b.txt]")
	webIdx := strings.Index(ctxt.Text, "[Web: https://x]")
	require.GreaterOrEqual(t, docIdx, 0)
	require.GreaterOrEqual(t, webIdx, 0)
	assert.Less(t, docIdx, webIdx)
}

func TestAssemble_CitationTags(t *testing.T) {
	ctxt := New(0).Assemble(
		[]models.EvidenceItem{docItem("the deadline is March 5th", "notes.txt")},
		[]models.EvidenceItem{webItem("rates unchanged", "https://news.example/r")},
	)
	assert.Contains(t, ctxt.Text, "[Doc: notes.txt] the deadline is March 5th")
	assert.Contains(t, ctxt.Text, "[Web: https://news.example/r] rates unchanged")
}

func TestAssemble_NoWebEvidenceMeansNoWebItems(t *testing.T) {
	ctxt := New(0).Assemble([]models.EvidenceItem{docItem("d", "a.txt")}, nil)
	for _, item := range ctxt.Items {
		assert.NotEqual(t, models.OriginWeb, item.Origin)
	}
	assert.NotContains(t, ctxt.Text, "[Web:")
}

func TestAssemble_Empty(t *testing.T) {
	ctxt := New(0).Assemble(nil, nil)
	assert.True(t, ctxt.Empty())
	assert.Equal(t, "", ctxt.Text)
}

func TestAssemble_DuplicatesPassThrough(t *testing.T) {
	ctxt := New(0).Assemble(
		[]models.EvidenceItem{docItem("same fact", "a.txt")},
		[]models.EvidenceItem{webItem("same fact", "https://x")},
	)
	assert.Len(t, ctxt.Items, 2)
	assert.Equal(t, 2, strings.Count(ctxt.Text, "same fact"))
}

func TestAssemble_ContextBudgetDropsTail(t *testing.T) {
	long := strings.Repeat("x", 100)
	ctxt := New(150).Assemble(
		[]models.EvidenceItem{docItem(long, "a.txt"), docItem(long, "b.txt")},
		[]models.EvidenceItem{webItem(long, "https://x")},
	)
	// Only the first item fits; the rest of the tail is dropped whole.
	require.Len(t, ctxt.Items, 1)
	assert.Equal(t, "a.txt", ctxt.Items[0].CitationKey)
	assert.LessOrEqual(t, len(ctxt.Text), 150)
}

func TestAssemble_FirstItemKeptEvenOverBudget(t *testing.T) {
	long := strings.Repeat("y", 500)
	ctxt := New(100).Assemble([]models.EvidenceItem{docItem(long, "a.txt")}, nil)
	require.Len(t, ctxt.Items, 1, "an oversized first item is kept rather than answering from nothing")
}
