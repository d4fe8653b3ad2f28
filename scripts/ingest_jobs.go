package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumelens/resume-analyzer/internal/config"
	"resumelens/resume-analyzer/internal/logger"
	"resumelens/resume-analyzer/internal/services"
)

// Ingests job postings into the Qdrant index used by the /match endpoint.
// Each .txt file holds one posting: first line is the title, the rest is
// the description.
func main() {
	dir := flag.String("dir", "./job_postings", "directory of job posting .txt files")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(false, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Gemini.APIKey == "" || cfg.Qdrant.URL == "" {
		log.Fatal("❌ GEMINI_API_KEY and QDRANT_URL are required for ingestion")
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize Gemini", zap.Error(err))
	}

	jobIndex, err := services.NewJobIndexService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
	}
	if err := jobIndex.InitCollection(); err != nil {
		log.Fatal("❌ Failed to initialize collection", zap.Error(err))
	}

	files, err := filepath.Glob(filepath.Join(*dir, "*.txt"))
	if err != nil || len(files) == 0 {
		log.Fatal("❌ No posting files found", zap.String("dir", *dir))
	}

	ctx := context.Background()
	ingested := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("⚠️ Skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}

		title, description, ok := strings.Cut(strings.TrimSpace(string(content)), "\n")
		if !ok || strings.TrimSpace(description) == "" {
			log.Warn("⚠️ Skipping posting without description", zap.String("path", path))
			continue
		}

		posting := services.JobPosting{
			ID:          uuid.New().String(),
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(description),
		}

		embedding, err := geminiService.Embed(ctx, posting.Title+"\n"+posting.Description)
		if err != nil {
			log.Warn("⚠️ Failed to embed posting", zap.String("path", path), zap.Error(err))
			continue
		}

		if err := jobIndex.UpsertPosting(ctx, posting, embedding); err != nil {
			log.Warn("⚠️ Failed to upsert posting", zap.String("path", path), zap.Error(err))
			continue
		}

		log.Info("✅ Ingested posting", zap.String("title", posting.Title))
		ingested++
	}

	log.Info("🚀 Ingestion complete", zap.Int("ingested", ingested), zap.Int("total", len(files)))
}
