package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// Embedder is the embedding capability the answer evaluator and semantic
// matcher depend on. It may be unavailable at runtime; callers must detect
// the nil/error case and take their documented degraded paths.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// TextGenerator produces free-form model output for a prompt. Used by the
// artifact-backed predictor.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

const embedBatchConcurrency = 4

// GeminiService implements both Embedder and TextGenerator against the
// Gemini API.
type GeminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
	logger     *zap.Logger
}

func NewGeminiService(apiKey string, logger *zap.Logger) (*GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
		logger:     logger,
	}, nil
}

// Embed implements Embedder.
func (g *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// EmbedBatch embeds several texts with bounded concurrency. Batch fan-out
// lives here at the capability boundary so the evaluator stays free of
// concurrency concerns.
func (g *GeminiService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(embedBatchConcurrency)

	for i, text := range texts {
		eg.Go(func() error {
			vec, err := g.Embed(ctx, text)
			if err != nil {
				return err
			}
			vectors[i] = vec
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to embed batch: %w", err)
	}

	return vectors, nil
}

// Generate implements TextGenerator.
func (g *GeminiService) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors,
// in [-1, 1]. Zero-length or mismatched vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
