package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0}, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// similarityVector builds a unit vector whose cosine against (1,0) equals sim.
func similarityVector(sim float64) []float32 {
	return []float32{float32(sim), float32(math.Sqrt(1 - sim*sim))}
}

func newTestEvaluator(embedder Embedder) AnswerEvaluator {
	extractor := NewSkillExtractor(DefaultSkillVocabulary())
	return NewAnswerEvaluator(extractor, embedder, zap.NewNop())
}

func TestEvaluateEmptyInput(t *testing.T) {
	evaluator := newTestEvaluator(&stubEmbedder{})

	results, err := evaluator.Evaluate(context.Background(), []string{}, []string{}, "some resume text")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEvaluateMismatchedPairs(t *testing.T) {
	evaluator := newTestEvaluator(&stubEmbedder{})

	_, err := evaluator.Evaluate(context.Background(),
		[]string{"one question"}, []string{"an answer", "another answer"}, "resume")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestEvaluateDegenerateAnswers(t *testing.T) {
	evaluator := newTestEvaluator(&stubEmbedder{})

	tests := []struct {
		name   string
		answer string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"single word", "idk"},
		{"two words", "not sure"},
		{"sentinel", "No Answer Provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := evaluator.Evaluate(context.Background(),
				[]string{"What is your experience with Go?"}, []string{tt.answer}, "resume")
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, 0, results[0].Score)
			assert.Equal(t, "No answer provided.", results[0].Feedback)
		})
	}
}

func TestEvaluateFullScoringScenario(t *testing.T) {
	question := "What is your experience with Python?"
	answer := "I used Python for three years, solved production bugs, and achieved a 20% performance improvement."

	embedder := &stubEmbedder{vectors: map[string][]float32{
		answer: similarityVector(0.6),
	}}
	evaluator := newTestEvaluator(embedder)

	results, err := evaluator.Evaluate(context.Background(), []string{question}, []string{answer}, "Python developer resume")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Base 8 (highly relevant) + 1 lexical overlap ("python") + 1 STAR bonus.
	assert.Equal(t, 10, results[0].Score)
	assert.Equal(t, "Highly relevant answer. Good use of action verbs.", results[0].Feedback)
}

func TestEvaluateSimilarityBands(t *testing.T) {
	question := "Explain database indexing strategies."
	// No lexical overlap with the question, no STAR keywords.
	answer := "cats enjoy warm windowsills every morning"

	tests := []struct {
		similarity float64
		score      int
		feedback   string
	}{
		{0.6, 8, "Highly relevant answer."},
		{0.5, 6, "Relevant, but could be more specific."},
		{0.4, 4, "Somewhat vague. Address the specific concept."},
		{0.3, 2, "Off-topic or weak relation."},
		{0.2, 0, "Incorrect or irrelevant answer."},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("similarity %.1f", tt.similarity), func(t *testing.T) {
			embedder := &stubEmbedder{vectors: map[string][]float32{
				answer: similarityVector(tt.similarity),
			}}
			evaluator := newTestEvaluator(embedder)

			results, err := evaluator.Evaluate(context.Background(), []string{question}, []string{answer}, "resume")
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, tt.score, results[0].Score)
			assert.Equal(t, tt.feedback, results[0].Feedback)
		})
	}
}

func TestEvaluateBaseScoreMonotonicity(t *testing.T) {
	question := "Explain database indexing strategies."
	answer := "cats enjoy warm windowsills every morning"

	previous := -1
	for _, sim := range []float64{0.1, 0.3, 0.4, 0.5, 0.7} {
		embedder := &stubEmbedder{vectors: map[string][]float32{
			answer: similarityVector(sim),
		}}
		evaluator := newTestEvaluator(embedder)

		results, err := evaluator.Evaluate(context.Background(), []string{question}, []string{answer}, "resume")
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.GreaterOrEqual(t, results[0].Score, previous,
			"higher similarity band must never lower the score")
		previous = results[0].Score
	}
}

func TestEvaluateEmbedderUnavailable(t *testing.T) {
	question := "Explain database indexing strategies."
	answer := "cats enjoy warm windowsills every morning"

	for _, embedder := range []Embedder{nil, &stubEmbedder{err: errors.New("backend down")}} {
		evaluator := newTestEvaluator(embedder)

		results, err := evaluator.Evaluate(context.Background(), []string{question}, []string{answer}, "resume")
		require.NoError(t, err, "embedding outage must never fail the request")
		require.Len(t, results, 1)
		assert.Equal(t, 5, results[0].Score)
		assert.Equal(t, "AI unavailable.", results[0].Feedback)
	}
}

func TestEvaluateNeutralPathKeepsBonuses(t *testing.T) {
	question := "Tell me about a production incident you handled."
	answer := "I led the response to a production outage and solved the root cause."

	evaluator := newTestEvaluator(nil)

	results, err := evaluator.Evaluate(context.Background(), []string{question}, []string{answer}, "resume")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Neutral 5 + lexical overlap ("production") + STAR bonus ("led", "solved").
	assert.Equal(t, 7, results[0].Score)
	assert.Equal(t, "AI unavailable. Good use of action verbs.", results[0].Feedback)
}

func TestEvaluateOrderPreservedWithMixedPairs(t *testing.T) {
	questions := []string{
		"What is your experience with Python?",
		"Describe your teamwork style.",
		"How do you test your code?",
	}
	goodAnswer := "I used Python daily and achieved strong results in production systems."
	answers := []string{goodAnswer, "idk", "I write table driven unit checks for every package."}

	embedder := &stubEmbedder{vectors: map[string][]float32{
		goodAnswer: similarityVector(0.6),
	}}
	evaluator := newTestEvaluator(embedder)

	results, err := evaluator.Evaluate(context.Background(), questions, answers, "resume")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 10, results[0].Score)
	assert.Equal(t, 0, results[1].Score)
	assert.Equal(t, "No answer provided.", results[1].Feedback)
	assert.NotZero(t, results[2].Score)
}

func TestMeaningfulOverlapIgnoresShortTokens(t *testing.T) {
	// Shared words are all <= 3 characters, so no bonus applies.
	assert.False(t, meaningfulOverlap("how do you fix it", "i fix it and ship"))
	assert.True(t, meaningfulOverlap("describe your python project", "my python work shipped"))
}
