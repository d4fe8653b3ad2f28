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

const matchTimeout = 30 * time.Second

type MatchHandler struct {
	matchService services.MatchService
	resumeCache  repositories.ResumeCache
	logger       *zap.Logger
}

func NewMatchHandler(
	matchService services.MatchService,
	resumeCache repositories.ResumeCache,
	logger *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		resumeCache:  resumeCache,
		logger:       logger,
	}
}

// HandleMatch handles POST /match: skill coverage of a resume against a job
// description.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

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

	ctx, cancel := context.WithTimeout(c.UserContext(), matchTimeout)
	defer cancel()

	result, err := h.matchService.Match(ctx, resumeText, req.JDText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "match failed",
		})
	}

	return c.JSON(result)
}
