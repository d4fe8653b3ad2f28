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

const generateTimeout = 30 * time.Second

type GenerateHandler struct {
	questionGenerator services.QuestionGenerator
	skillExtractor    services.SkillExtractor
	predictor         services.Predictor
	resumeCache       repositories.ResumeCache
	logger            *zap.Logger
}

func NewGenerateHandler(
	questionGenerator services.QuestionGenerator,
	skillExtractor services.SkillExtractor,
	predictor services.Predictor,
	resumeCache repositories.ResumeCache,
	logger *zap.Logger,
) *GenerateHandler {
	return &GenerateHandler{
		questionGenerator: questionGenerator,
		skillExtractor:    skillExtractor,
		predictor:         predictor,
		resumeCache:       resumeCache,
		logger:            logger,
	}
}

// HandleGenerate handles POST /interview/generate. Job-description skills
// steer the question set when a JD is supplied; otherwise resume skills do.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resumeText := req.ResumeText
	if resumeText == "" && req.ResumeName != "" {
		cached, err := h.resumeCache.Get(c.UserContext(), req.ResumeName)
		if err != nil && !errors.Is(err, repositories.ErrResumeNotCached) {
			h.logger.Error("resume cache lookup failed", zap.Error(err))
		}
		resumeText = cached
	}

	if resumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text or an analyzed resume_name is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), generateTimeout)
	defer cancel()

	resumeSkills := h.skillExtractor.Extract(resumeText)
	var jdSkills []string
	if req.JDText != "" {
		jdSkills = h.skillExtractor.Extract(req.JDText)
	}

	predictedCategory := h.predictor.PredictCategory(ctx, resumeText)
	recommendedJob := h.predictor.RecommendJob(ctx, resumeText)

	questions := h.questionGenerator.Generate(resumeSkills, jdSkills, predictedCategory, recommendedJob)

	return c.JSON(models.GenerateQuestionsResponse{
		TotalQuestions: len(questions),
		Questions:      questions,
	})
}
