package main

import (
	"context"
	"log"
	"os"
	"time"

	"zaman-assistant-be/internal/config"
	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/internal/repository/implementation"
	"zaman-assistant-be/pkg/database"
	embeddingopenai "zaman-assistant-be/pkg/embedding/openai"
	"zaman-assistant-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// ragprep rebuilds the knowledge base from a plain text file: splits it
// into paragraphs, embeds each one and replaces the vector index.
//
// Usage: go run ./cmd/ragprep [path/to/data.txt]
func main() {
	sourcePath := "data.txt"
	if len(os.Args) > 1 {
		sourcePath = os.Args[1]
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		color.Red("Failed to read %s: %v", sourcePath, err)
		os.Exit(1)
	}

	chunks := utils.SplitParagraphs(string(raw), 100)
	if len(chunks) == 0 {
		color.Red("No usable paragraphs in %s", sourcePath)
		os.Exit(1)
	}

	color.Cyan("🚀 Rebuilding knowledge base from %s (%d chunks)\n", sourcePath, len(chunks))

	embedder := embeddingopenai.NewOpenAIProvider(
		cfg.Upstream.BaseURL,
		cfg.Upstream.APIKey,
		cfg.Upstream.EmbeddingModel,
	)

	ctx := context.Background()
	docs := make([]*entity.KnowledgeDocument, 0, len(chunks))
	for i, chunk := range chunks {
		color.Yellow("[%d/%d] Embedding chunk (%d chars)...", i+1, len(chunks), len(chunk))
		vec, err := embedder.Generate(ctx, chunk)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		docs = append(docs, &entity.KnowledgeDocument{
			Id:        uuid.New(),
			Content:   chunk,
			Metadata:  map[string]interface{}{"source": sourcePath, "chunk": i},
			Embedding: vec,
			CreatedAt: time.Now(),
		})
		// Gentle pacing so the upstream hub doesn't rate-limit us.
		time.Sleep(500 * time.Millisecond)
	}

	repo := implementation.NewKnowledgeRepository(db)
	if err := repo.Reset(ctx); err != nil {
		color.Red("Failed to reset knowledge base: %v", err)
		os.Exit(1)
	}
	if err := repo.CreateBulk(ctx, docs); err != nil {
		color.Red("Failed to store documents: %v", err)
		os.Exit(1)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		color.Red("Stored, but count check failed: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Knowledge base rebuilt: %d documents", total)
}
