package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRulePredictorCategory(t *testing.T) {
	predictor := NewRulePredictor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"java resume", "senior java backend services", "Software Engineering"},
		{"react resume", "react component architecture", "Software Engineering"},
		{"sql resume", "sql warehouse modelling", "Data Science"},
		{"data resume", "large data pipelines", "Data Science"},
		{"no keywords", "customer success leadership", "Data Science"},
		{"javascript is not java", "javascript frontend work", "Data Science"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predictor.PredictCategory(ctx, tt.text))
		})
	}
}

func TestRulePredictorJob(t *testing.T) {
	predictor := NewRulePredictor()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"react wins", "react and python experience", "Frontend Developer"},
		{"python without react", "python notebooks and sql", "Data Scientist"},
		{"neither", "java microservices", "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predictor.RecommendJob(ctx, tt.text))
		})
	}
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ float32) (string, error) {
	return s.response, s.err
}

func TestGeminiPredictorUsesModelLabel(t *testing.T) {
	predictor := NewGeminiPredictor(&stubGenerator{response: " Software Engineering \n"}, zap.NewNop())

	category := predictor.PredictCategory(context.Background(), "sql heavy resume")
	assert.Equal(t, "Software Engineering", category)
}

func TestGeminiPredictorFallsBackOnError(t *testing.T) {
	predictor := NewGeminiPredictor(&stubGenerator{err: errors.New("quota exhausted")}, zap.NewNop())

	category := predictor.PredictCategory(context.Background(), "sql heavy resume")
	assert.Equal(t, "Data Science", category, "rule policy must answer when the model fails")
}

func TestGeminiPredictorFallsBackOnUnknownLabel(t *testing.T) {
	predictor := NewGeminiPredictor(&stubGenerator{response: "Underwater Basket Weaving"}, zap.NewNop())

	job := predictor.RecommendJob(context.Background(), "python notebooks resume")
	assert.Equal(t, "Data Scientist", job)
}

func TestMatchLabelIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Data Scientist", matchLabel("data scientist", predictorJobs))
	assert.Equal(t, "", matchLabel("no such label", predictorJobs))
}
