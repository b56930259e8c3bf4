package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration errors are surfaced before any processing starts. A missing
// credential for a path the user enabled is fatal for the whole run.
var (
	ErrMissingEmbedLLM     = errors.New("config: embedding model base_url and model are required")
	ErrMissingInferenceLLM = errors.New("config: inference model base_url and model are required")
	ErrMissingWebSearchKey = errors.New("config: web search api_key is required when web search is enabled")
)

const (
	defaultChunkSize       = 800
	defaultChunkOverlap    = 100
	defaultTopK            = 5
	defaultWebResults      = 3
	defaultWebSearchURL    = "https://api.tavily.com/search"
	defaultMaxContextChars = 0 // unlimited
)

// LLMConfig describes one model endpoint. Provider selects the client
// flavor: "openai" (default, any OpenAI-compatible API) or "ollama".
type LLMConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	Model    string `yaml:"model"`
}

// WebSearchConfig describes the live web search provider.
type WebSearchConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// RAGConfig holds the retrieval knobs. Chunking constants are configuration,
// not end-user tunable at query time.
type RAGConfig struct {
	ChunkSize       int `yaml:"chunk_size"`
	ChunkOverlap    int `yaml:"chunk_overlap"`
	TopK            int `yaml:"top_k"`
	WebResults      int `yaml:"web_results"`
	MaxContextChars int `yaml:"max_context_chars"`
}

type Config struct {
	EmbedLLM     LLMConfig       `yaml:"embed_llm"`
	InferenceLLM LLMConfig       `yaml:"inference_llm"`
	WebSearch    WebSearchConfig `yaml:"web_search"`
	RAG          RAGConfig       `yaml:"rag"`
}

// LoadConfig reads the yaml config file, overlays secrets from the
// environment (a .env file is honored when present) and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.overlayEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// overlayEnv lets environment variables win over yaml values for secrets,
// so keys never have to live in the config file.
func (c *Config) overlayEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		c.WebSearch.APIKey = v
	}
	if v := os.Getenv("OPENROUTER_KEY"); v != "" {
		if c.EmbedLLM.Key == "" {
			c.EmbedLLM.Key = v
		}
		if c.InferenceLLM.Key == "" {
			c.InferenceLLM.Key = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.RAG.ChunkSize <= 0 {
		c.RAG.ChunkSize = defaultChunkSize
	}
	if c.RAG.ChunkOverlap < 0 || c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}
	if c.RAG.TopK <= 0 {
		c.RAG.TopK = defaultTopK
	}
	if c.RAG.WebResults <= 0 {
		c.RAG.WebResults = defaultWebResults
	}
	if c.RAG.MaxContextChars < 0 {
		c.RAG.MaxContextChars = defaultMaxContextChars
	}
	if c.WebSearch.BaseURL == "" {
		c.WebSearch.BaseURL = defaultWebSearchURL
	}
}

// Validate checks that every enabled path has what it needs. webEnabled is
// passed in because web search is a per-run toggle, not a config field.
func (c *Config) Validate(webEnabled bool) error {
	if c.EmbedLLM.BaseURL == "" || c.EmbedLLM.Model == "" {
		return ErrMissingEmbedLLM
	}
	if c.InferenceLLM.BaseURL == "" || c.InferenceLLM.Model == "" {
		return ErrMissingInferenceLLM
	}
	if webEnabled && c.WebSearch.APIKey == "" {
		return ErrMissingWebSearchKey
	}
	return nil
}
