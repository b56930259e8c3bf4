package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_Text(t *testing.T) {
	path := writeFile(t, "notes.txt", "The project deadline is March 5th.")

	doc, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.SourceID)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, 1, doc.Segments[0].Number)
	assert.Contains(t, doc.Segments[0].Text, "March 5th")
}

func TestFile_Markdown(t *testing.T) {
	path := writeFile(t, "readme.md", "# Title\n\nSome **bold** statement with a [link](https://example.com).\n")

	doc, err := File(path)
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	text := doc.Segments[0].Text
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "bold")
	assert.NotContains(t, text, "<strong>", "markup must be stripped")
	assert.NotContains(t, text, "**", "markdown syntax must be rendered away")
}

func TestFile_EmptyDocument(t *testing.T) {
	path := writeFile(t, "empty.txt", "  \n\t  ")

	_, err := File(path)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestFile_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "image.png", "not really an image")

	doc, err := File(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, "image.png", doc.SourceID)
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestStripXMLTags(t *testing.T) {
	got := stripXMLTags("<p>hello <b>world</b></p>")
	assert.Equal(t, "hello world", strings.Join(strings.Fields(got), " "))
}
