package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resumelens/resume-analyzer/internal/models"
	"resumelens/resume-analyzer/internal/repositories"
	"resumelens/resume-analyzer/internal/services"
)

const evaluateTimeout = 30 * time.Second

var errMissingResumeContext = errors.New("resume context is missing")

type EvaluateHandler struct {
	evaluator   services.AnswerEvaluator
	resumeCache repositories.ResumeCache
	logger      *zap.Logger
}

func NewEvaluateHandler(
	evaluator services.AnswerEvaluator,
	resumeCache repositories.ResumeCache,
	logger *zap.Logger,
) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator:   evaluator,
		resumeCache: resumeCache,
		logger:      logger,
	}
}

// HandleEvaluate handles POST /interview/evaluate for a batch of
// question/answer pairs.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resumeText, err := h.resumeContext(c.UserContext(), req.ResumeContent, req.ResumeName)
	if err != nil {
		return h.resumeContextError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), evaluateTimeout)
	defer cancel()

	evaluations, err := h.evaluator.Evaluate(ctx, req.Questions, req.Answers, resumeText)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "evaluation failed",
		})
	}

	scores := make([]int, 0, len(evaluations))
	feedback := make([]string, 0, len(evaluations))
	for _, e := range evaluations {
		scores = append(scores, e.Score)
		feedback = append(feedback, e.Feedback)
	}

	transcribed := ""
	if len(req.Answers) > 0 {
		transcribed = req.Answers[0]
	}

	return c.JSON(models.EvaluateResponse{
		IndividualScores:   scores,
		IndividualFeedback: feedback,
		TranscribedText:    transcribed,
	})
}

// HandleEvaluateText handles POST /interview/evaluate/text: the single-pair
// convenience surface. The scalar question/answer is wrapped into sequences
// here at the boundary, not inside the evaluator.
func (h *EvaluateHandler) HandleEvaluateText(c *fiber.Ctx) error {
	var req models.EvaluateTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resumeText, err := h.resumeContext(c.UserContext(), req.ResumeContent, req.ResumeName)
	if err != nil {
		return h.resumeContextError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), evaluateTimeout)
	defer cancel()

	evaluations, err := h.evaluator.Evaluate(ctx, []string{req.Question}, []string{req.Answer}, resumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "evaluation failed",
		})
	}

	return c.JSON(models.EvaluateTextResponse{
		Score:           evaluations[0].Score,
		Feedback:        evaluations[0].Feedback,
		TranscribedText: req.Answer,
	})
}

// resumeContext prefers inline resume content and falls back to the
// analysis-time cache keyed by resume name.
func (h *EvaluateHandler) resumeContext(ctx context.Context, inline, resumeName string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if resumeName == "" {
		return "", errMissingResumeContext
	}

	resumeText, err := h.resumeCache.Get(ctx, resumeName)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotCached) {
			return "", errMissingResumeContext
		}
		return "", err
	}

	return resumeText, nil
}

func (h *EvaluateHandler) resumeContextError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errMissingResumeContext) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume context is missing. Please run the initial analysis first.",
		})
	}

	h.logger.Error("resume cache lookup failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to load resume context",
	})
}
