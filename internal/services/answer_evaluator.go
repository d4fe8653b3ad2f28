package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// AnswerEvaluation is the outcome for a single question/answer pair: a
// bounded 0-10 score plus explainable feedback text.
type AnswerEvaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

const (
	noAnswerSentinel = "no answer provided"
	minAnswerWords   = 3

	neutralScore       = 5
	starBonusThreshold = 4
	maxAnswerScore     = 10

	feedbackNoAnswer      = "No answer provided."
	feedbackAIUnavailable = "AI unavailable."
	feedbackStarBonus     = "Good use of action verbs."
	feedbackIrrelevant    = "Answer does not appear relevant to the question."
)

// Highest threshold first; first match wins.
var similarityBands = []struct {
	threshold float64
	score     int
	feedback  string
}{
	{0.55, 8, "Highly relevant answer."},
	{0.45, 6, "Relevant, but could be more specific."},
	{0.35, 4, "Somewhat vague. Address the specific concept."},
	{0.25, 2, "Off-topic or weak relation."},
}

var starKeywords = []string{"situation", "task", "action", "result", "solved", "led", "achieved"}

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, questions, answers []string, resumeText string) ([]AnswerEvaluation, error)
}

type answerEvaluator struct {
	skillExtractor SkillExtractor
	embedder       Embedder
	logger         *zap.Logger
}

// NewAnswerEvaluator builds the evaluator. A nil embedder is valid: every
// pair then takes the neutral degraded path instead of failing the request.
func NewAnswerEvaluator(skillExtractor SkillExtractor, embedder Embedder, logger *zap.Logger) AnswerEvaluator {
	return &answerEvaluator{
		skillExtractor: skillExtractor,
		embedder:       embedder,
		logger:         logger,
	}
}

func (e *answerEvaluator) Evaluate(ctx context.Context, questions, answers []string, resumeText string) ([]AnswerEvaluation, error) {
	if len(questions) != len(answers) {
		return nil, ErrMismatchedPairs
	}
	if len(questions) == 0 {
		return []AnswerEvaluation{}, nil
	}

	resumeSkills := e.skillExtractor.Extract(resumeText)
	e.logger.Debug("evaluating interview answers",
		zap.Int("pairs", len(questions)),
		zap.Int("resume_skills", len(resumeSkills)))

	// Degenerate pairs skip similarity scoring entirely, so only the rest
	// go to the embedding capability.
	degenerate := make([]bool, len(answers))
	var embedTexts []string
	for i, a := range answers {
		if isDegenerateAnswer(a) {
			degenerate[i] = true
			continue
		}
		embedTexts = append(embedTexts, questions[i], answers[i])
	}

	similarities, available := e.similarities(ctx, embedTexts)

	results := make([]AnswerEvaluation, 0, len(questions))
	pairIdx := 0
	for i := range questions {
		if degenerate[i] {
			results = append(results, AnswerEvaluation{Score: 0, Feedback: feedbackNoAnswer})
			continue
		}

		var eval AnswerEvaluation
		if available {
			eval = scorePair(questions[i], answers[i], similarities[pairIdx], true)
		} else {
			eval = scorePair(questions[i], answers[i], 0, false)
		}
		pairIdx++

		results = append(results, eval)
	}

	return results, nil
}

// similarities returns the per-pair cosine similarity for the interleaved
// question/answer texts, or available=false when the embedding capability is
// down. The evaluator never fails the whole request over an embedding outage.
func (e *answerEvaluator) similarities(ctx context.Context, embedTexts []string) ([]float64, bool) {
	if e.embedder == nil || len(embedTexts) == 0 {
		return nil, e.embedder != nil && len(embedTexts) == 0
	}

	vectors, err := e.embedder.EmbedBatch(ctx, embedTexts)
	if err != nil {
		e.logger.Warn("embedding capability unavailable, using neutral scores", zap.Error(err))
		return nil, false
	}

	sims := make([]float64, 0, len(vectors)/2)
	for i := 0; i+1 < len(vectors); i += 2 {
		sims = append(sims, CosineSimilarity(vectors[i], vectors[i+1]))
	}
	return sims, true
}

func scorePair(question, answer string, similarity float64, aiAvailable bool) AnswerEvaluation {
	var score int
	var fragments []string

	if aiAvailable {
		score = 0
		feedback := "Incorrect or irrelevant answer."
		for _, band := range similarityBands {
			if similarity > band.threshold {
				score = band.score
				feedback = band.feedback
				break
			}
		}
		fragments = append(fragments, feedback)
	} else {
		score = neutralScore
		fragments = append(fragments, feedbackAIUnavailable)
	}

	if meaningfulOverlap(question, answer) {
		score++
	}

	if score >= starBonusThreshold && containsStarKeyword(answer) {
		score++
		fragments = append(fragments, feedbackStarBonus)
	}

	if score > maxAnswerScore {
		score = maxAnswerScore
	}
	if score < 0 {
		score = 0
	}

	feedback := strings.Join(fragments, " ")
	if score == 0 && feedback == "" {
		feedback = feedbackIrrelevant
	}

	return AnswerEvaluation{Score: score, Feedback: feedback}
}

// isDegenerateAnswer catches empty, too-short, and explicit non-responses so
// they bypass similarity scoring.
func isDegenerateAnswer(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return true
	}
	if len(strings.Fields(trimmed)) < minAnswerWords {
		return true
	}
	return strings.EqualFold(trimmed, noAnswerSentinel)
}

// meaningfulOverlap reports whether question and answer share at least one
// word longer than 3 characters. Rewards answers that engage with the
// question's terminology independent of the embedding signal.
func meaningfulOverlap(question, answer string) bool {
	questionWords := make(map[string]struct{})
	for _, w := range strings.Fields(NormalizeText(question)) {
		questionWords[w] = struct{}{}
	}

	for _, w := range strings.Fields(NormalizeText(answer)) {
		if len(w) <= 3 {
			continue
		}
		if _, ok := questionWords[w]; ok {
			return true
		}
	}
	return false
}

func containsStarKeyword(answer string) bool {
	lower := strings.ToLower(answer)
	for _, kw := range starKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
