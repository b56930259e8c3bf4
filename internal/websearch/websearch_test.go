package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.WebSearchConfig{BaseURL: url, APIKey: "test-key"})
}

func TestSearch_ReturnsBoundedSnippets(t *testing.T) {
	var gotAuth string
	var gotReq searchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"title": "One", "url": "https://a", "content": "first"},
				{"title": "Two", "url": "https://b", "content": "second"},
				{"title": "Three", "url": "https://c", "content": "third"},
				{"title": "Four", "url": "https://d", "content": "fourth"},
			},
		})
	}))
	defer server.Close()

	snippets, err := newTestClient(server.URL).Search(context.Background(), "interest rates", 3)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "interest rates", gotReq.Query)
	assert.Equal(t, 3, gotReq.MaxResults)

	require.Len(t, snippets, 3, "results must be capped at k even if the provider over-delivers")
	assert.Equal(t, "first", snippets[0].Content)
	assert.Equal(t, "https://a", snippets[0].URL)
}

func TestSearch_SkipsIncompleteResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"url": "https://a", "content": ""},
				{"url": "", "content": "orphan"},
				{"url": "https://c", "content": "keeper"},
			},
		})
	}))
	defer server.Close()

	snippets, err := newTestClient(server.URL).Search(context.Background(), "q", 3)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, "https://c", snippets[0].URL)
}

func TestSearch_ProviderErrorIsUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"quota exhausted", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
		{"bad key", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Search(context.Background(), "q", 3)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestSearch_NetworkErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Search(context.Background(), "q", 3)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_MalformedBodyIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), "q", 3)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_ZeroKIsNoop(t *testing.T) {
	snippets, err := newTestClient("http://127.0.0.1:0").Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Empty(t, snippets)
}
