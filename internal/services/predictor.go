package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Predictor maps resume text to a broad category and a recommended job title.
// The artifact-backed variant may be unavailable at startup; callers select a
// variant once and treat the result as read-only for the process lifetime.
type Predictor interface {
	PredictCategory(ctx context.Context, text string) string
	RecommendJob(ctx context.Context, text string) string
}

var predictorCategories = []string{
	"Software Engineering", "Data Science", "DevOps", "Web Development",
}

var predictorJobs = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer",
	"Data Scientist", "Data Analyst", "Machine Learning Engineer", "DevOps Engineer",
}

// rulePredictor is the deterministic keyword fallback. It keeps analysis fully
// testable when no model artifact or API key is configured.
type rulePredictor struct{}

func NewRulePredictor() Predictor {
	return &rulePredictor{}
}

func (p *rulePredictor) PredictCategory(_ context.Context, text string) string {
	normalized := NormalizeText(text)
	switch {
	case containsAnyWord(normalized, "java", "react"):
		return "Software Engineering"
	case containsAnyWord(normalized, "sql", "data"):
		return "Data Science"
	default:
		return "Data Science"
	}
}

func (p *rulePredictor) RecommendJob(_ context.Context, text string) string {
	normalized := NormalizeText(text)
	switch {
	case containsAnyWord(normalized, "react"):
		return "Frontend Developer"
	case containsAnyWord(normalized, "python"):
		return "Data Scientist"
	default:
		return "Software Engineer"
	}
}

func containsAnyWord(normalized string, words ...string) bool {
	fields := strings.Fields(normalized)
	for _, w := range words {
		for _, f := range fields {
			if f == w {
				return true
			}
		}
	}
	return false
}

// geminiPredictor asks the generative model to classify the resume against a
// closed label set. Any failure degrades to the rule policy so prediction
// never fails a request.
type geminiPredictor struct {
	generator TextGenerator
	fallback  Predictor
	logger    *zap.Logger
}

func NewGeminiPredictor(generator TextGenerator, logger *zap.Logger) Predictor {
	return &geminiPredictor{
		generator: generator,
		fallback:  NewRulePredictor(),
		logger:    logger,
	}
}

func (p *geminiPredictor) PredictCategory(ctx context.Context, text string) string {
	return p.classify(ctx, text, predictorCategories, p.fallback.PredictCategory)
}

func (p *geminiPredictor) RecommendJob(ctx context.Context, text string) string {
	return p.classify(ctx, text, predictorJobs, p.fallback.RecommendJob)
}

func (p *geminiPredictor) classify(
	ctx context.Context,
	text string,
	labels []string,
	fallback func(context.Context, string) string,
) string {
	prompt := buildClassificationPrompt(text, labels)

	response, err := p.generator.Generate(ctx, prompt, 0.0)
	if err != nil {
		p.logger.Warn("classifier unavailable, using rule fallback", zap.Error(err))
		return fallback(ctx, text)
	}

	label := matchLabel(response, labels)
	if label == "" {
		p.logger.Warn("classifier returned unknown label, using rule fallback",
			zap.String("response", strings.TrimSpace(response)))
		return fallback(ctx, text)
	}

	return label
}

func buildClassificationPrompt(text string, labels []string) string {
	var b strings.Builder
	b.WriteString("Classify the following resume into exactly one of these labels. ")
	b.WriteString("Answer with the label only, nothing else.\n\nLabels:\n")
	for _, l := range labels {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("\nResume:\n")

	// Keep the prompt bounded for very long resumes.
	if len(text) > 8000 {
		text = text[:8000]
	}
	b.WriteString(text)

	return b.String()
}

func matchLabel(response string, labels []string) string {
	cleaned := strings.ToLower(strings.TrimSpace(response))
	for _, l := range labels {
		if strings.Contains(cleaned, strings.ToLower(l)) {
			return l
		}
	}
	return ""
}
