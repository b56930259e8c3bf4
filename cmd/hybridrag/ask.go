package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/chunker"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/classifier"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/config"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/embedding"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/extract"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/llmservice"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/models"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/orchestrator"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/synthesizer"
	"github.com/Akshata-Hipparkar/Multi-Document-RAG-Search-Engine-with-Real-Time-Web-Search/internal/websearch"
)

var (
	configPath string
	askFiles   []string
	askWeb     bool
	askJSON    bool
	askVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hybridrag",
	Short: "Answer questions from your documents and live web search",
	Long: `hybridrag answers a natural-language question by combining evidence
from local documents with live web search results, producing a single
answer with [Doc: filename] and [Web: URL] citations.`,
	SilenceUsage: true,
}

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Run one hybrid retrieval query",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringSliceVarP(&askFiles, "file", "f", nil, "document to include (pdf, txt, docx, pptx, xlsx, ods, md); repeatable")
	askCmd.Flags().BoolVar(&askWeb, "web", false, "enable live web search")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(askCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs/config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&askVerbose, "verbose", "v", false, "enable debug logging")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	query := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(askWeb); err != nil {
		return err
	}

	documents := loadDocuments(askFiles)

	embedder, err := embedding.NewForConfig(&cfg.EmbedLLM)
	if err != nil {
		return fmt.Errorf("initializing embedder: %w", err)
	}
	completer, err := llmservice.NewClient(&cfg.InferenceLLM)
	if err != nil {
		return fmt.Errorf("initializing inference client: %w", err)
	}

	var searcher websearch.Searcher
	if askWeb {
		searcher = websearch.NewClient(&cfg.WebSearch)
	}

	orch, err := orchestrator.New(
		classifier.New(completer),
		searcher,
		synthesizer.New(completer),
		orchestrator.NewIndexBuilder(embedder),
		chunker.New(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap),
		cfg.RAG,
	)
	if err != nil {
		return err
	}

	sess := &orchestrator.Session{Documents: documents, WebEnabled: askWeb}
	result, err := orch.Run(context.Background(), sess, query)
	if err != nil {
		return err
	}

	if askJSON {
		return printJSON(cmd, result)
	}
	printResult(cmd, result)
	return nil
}

// loadDocuments extracts text from each file. A file that cannot be read is
// logged and skipped so one bad upload does not sink the query.
func loadDocuments(paths []string) []models.Document {
	documents := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := extract.File(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping document")
			continue
		}
		documents = append(documents, doc)
	}
	return documents
}

func printJSON(cmd *cobra.Command, result *models.AnswerResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printResult(cmd *cobra.Command, result *models.AnswerResult) {
	cmd.Println(result.Text)
	cmd.Println()
	cmd.Printf("Classification: %s\n", result.Classification)
	if len(result.UsedDocuments) > 0 {
		cmd.Printf("Documents: %s\n", strings.Join(result.UsedDocuments, ", "))
	}
	if result.UsedWeb {
		cmd.Println("Live web search used")
	}
	if len(result.Evidence) > 0 {
		cmd.Println("\nEvidence:")
		for i, item := range result.Evidence {
			snippet := item.Content
			if len(snippet) > 160 {
				snippet = snippet[:160] + "…"
			}
			cmd.Printf("  [%d] (%s) %s: %s\n", i+1, item.Origin, item.CitationKey, snippet)
		}
	}
}
