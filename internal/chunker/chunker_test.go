package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distinctText builds non-repeating content so chunk offsets can be located
// unambiguously inside the original.
func distinctText(words int) string {
	var b strings.Builder
	for i := 0; i < words; i++ {
		fmt.Fprintf(&b, "word%04d ", i)
	}
	return strings.TrimSpace(b.String())
}

func TestSplit_Empty(t *testing.T) {
	c := New(100, 20)
	assert.Empty(t, c.Split("", "a.txt", 1, 0))
	assert.Empty(t, c.Split("   \n\t ", "a.txt", 1, 0))
}

func TestSplit_ShortContentSingleChunk(t *testing.T) {
	c := New(100, 20)
	chunks := c.Split("short text", "a.txt", 3, 7)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0].Text)
	assert.Equal(t, "a.txt", chunks[0].SourceID)
	assert.Equal(t, 3, chunks[0].Segment)
	assert.Equal(t, 7, chunks[0].Position)
}

func TestSplit_ChunkSizeBound(t *testing.T) {
	c := New(100, 20)
	for _, chunk := range c.Split(distinctText(200), "a.txt", 1, 0) {
		assert.LessOrEqual(t, len(chunk.Text), 100)
	}
}

func TestSplit_PositionsAndSource(t *testing.T) {
	c := New(100, 20)
	chunks := c.Split(distinctText(200), "report.pdf", 2, 5)
	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.Equal(t, "report.pdf", chunk.SourceID)
		assert.Equal(t, 2, chunk.Segment)
		assert.Equal(t, 5+i, chunk.Position)
	}
}

// Consecutive chunks must overlap or at least touch, so their union covers
// the whole input.
func TestSplit_CoversOriginalText(t *testing.T) {
	for _, tc := range []struct {
		name    string
		size    int
		overlap int
	}{
		{"default shape", 100, 20},
		{"no overlap", 100, 0},
		{"large overlap", 80, 40},
	} {
		t.Run(tc.name, func(t *testing.T) {
			original := distinctText(300)
			chunks := New(tc.size, tc.overlap).Split(original, "a.txt", 1, 0)
			require.NotEmpty(t, chunks)

			prevEnd := 0
			for _, chunk := range chunks {
				start := strings.Index(original, chunk.Text)
				require.GreaterOrEqual(t, start, 0, "chunk must be a substring of the original")
				// Trimming may eat a whitespace separator on either side of
				// a window boundary; anything wider is lost text.
				assert.LessOrEqual(t, start, prevEnd+2, "gap between consecutive chunks")
				if end := start + len(chunk.Text); end > prevEnd {
					prevEnd = end
				}
			}
			assert.GreaterOrEqual(t, prevEnd, len(original)-1, "chunks must reach the end of the input")
		})
	}
}

func TestNew_SanitizesBadConfig(t *testing.T) {
	c := New(0, -5)
	chunks := c.Split(distinctText(400), "a.txt", 1, 0)
	assert.NotEmpty(t, chunks)

	// Overlap >= size would never advance; New must cap it.
	c = New(50, 50)
	chunks = c.Split(distinctText(100), "a.txt", 1, 0)
	assert.NotEmpty(t, chunks)
}
