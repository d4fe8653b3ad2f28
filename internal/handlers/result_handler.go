package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumelens/resume-analyzer/internal/repositories"
	"resumelens/resume-analyzer/internal/services"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

const recentResultsLimit = 20

// HandleListResults handles GET /results, a summary of recent analyses.
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	analyses, err := h.analysisRepo.FindRecent(recentResultsLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list analyses",
		})
	}

	return c.JSON(fiber.Map{
		"total":    len(analyses),
		"analyses": analyses,
	})
}

// HandleGetResult handles GET /result/:id, replaying a persisted analysis.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	var result services.AnalysisResult
	if err := json.Unmarshal([]byte(analysis.ResultJSON), &result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored analysis",
		})
	}

	result.ResumeName = analysis.ResumeName
	result.AnalysisID = analysis.ID.String()

	return c.JSON(result)
}
