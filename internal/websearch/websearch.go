package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/config"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
)

// ErrUnavailable covers network failures, quota exhaustion and any other
// provider-side error. The orchestrator downgrades it to "no web evidence".
var ErrUnavailable = errors.New("websearch: provider unavailable")

// Searcher is the web search contract consumed by the orchestrator.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]models.Snippet, error)
}

// Client calls a Tavily-compatible search API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a search client from configuration.
func NewClient(cfg *config.WebSearchConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search returns at most k snippets for the query. Every provider failure is
// reported as ErrUnavailable so the caller can degrade to document-only
// retrieval instead of failing the whole query.
func (c *Client) Search(ctx context.Context, query string, k int) ([]models.Snippet, error) {
	if k <= 0 {
		return nil, nil
	}

	jsonData, err := json.Marshal(searchRequest{Query: query, MaxResults: k})
	if err != nil {
		return nil, fmt.Errorf("websearch: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("websearch: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	snippets := make([]models.Snippet, 0, k)
	for _, result := range decoded.Results {
		if result.Content == "" || result.URL == "" {
			continue
		}
		snippets = append(snippets, models.Snippet{Content: result.Content, URL: result.URL})
		if len(snippets) == k {
			break
		}
	}
	return snippets, nil
}
