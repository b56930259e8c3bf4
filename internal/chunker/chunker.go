package chunker

import (
	"strings"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// Chunker splits raw document text into overlapping fixed-size segments.
// It is a pure transform; size and overlap come from configuration and are
// fixed for the lifetime of the Chunker.
type Chunker struct {
	size    int
	overlap int
}

// New returns a Chunker. Out-of-range values fall back to sane ones so a
// misconfigured chunker still makes progress instead of looping.
func New(size, overlap int) *Chunker {
	if size <= 0 {
		size = 800
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}
	return &Chunker{size: size, overlap: overlap}
}

// Split cuts content into chunks tagged with sourceID and segment. Positions
// are assigned in order starting at startPos so chunks from multi-segment
// sources keep one global ordering per document.
func (c *Chunker) Split(content, sourceID string, segment, startPos int) []models.Chunk {
	parts := c.split(content)
	chunks := make([]models.Chunk, 0, len(parts))
	for i, text := range parts {
		chunks = append(chunks, models.Chunk{
			Text:     text,
			SourceID: sourceID,
			Segment:  segment,
			Position: startPos + i,
		})
	}
	return chunks
}

// split walks the content producing windows of at most size characters with
// the configured overlap, preferring to break on whitespace or a period
// found in the last tenth of the window.
func (c *Chunker) split(content string) []string {
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return nil
	}
	if len(content) <= c.size {
		return []string{content}
	}

	var chunks []string
	contentLen := len(content)
	start := 0
	for start < contentLen {
		end := min(start+c.size, contentLen)

		if end < contentLen {
			// Never look back further than the overlap, otherwise the next
			// window could start past the break point and drop text.
			lookBack := min(c.size/10, c.overlap, end-start)
			for i := end - 1; i >= end-lookBack && i > start; i-- {
				if content[i] == ' ' || content[i] == '\n' || content[i] == '.' {
					end = i + 1
					break
				}
			}
		}

		if chunk := strings.TrimSpace(content[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		start += c.size - c.overlap
		if start >= contentLen {
			break
		}
	}
	return chunks
}
