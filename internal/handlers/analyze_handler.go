package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumelens/resume-analyzer/internal/models"
	"resumelens/resume-analyzer/internal/repositories"
	"resumelens/resume-analyzer/internal/services"
)

const analyzeTimeout = 30 * time.Second

type AnalyzeHandler struct {
	analyzer       services.Analyzer
	documentSource services.DocumentSource
	storageService services.StorageService
	analysisRepo   repositories.AnalysisRepository
	resumeCache    repositories.ResumeCache
	maxFileSize    int64
	logger         *zap.Logger
}

func NewAnalyzeHandler(
	analyzer services.Analyzer,
	documentSource services.DocumentSource,
	storageService services.StorageService,
	analysisRepo repositories.AnalysisRepository,
	resumeCache repositories.ResumeCache,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		documentSource: documentSource,
		storageService: storageService,
		analysisRepo:   analysisRepo,
		resumeCache:    resumeCache,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleAnalyze handles POST /analyze. The resume text is cached under the
// uploaded filename so later evaluation calls can reference it by name.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file too large",
		})
	}

	storedName, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resumeText, err := h.documentSource.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(storedName)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not extract text from the file",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), analyzeTimeout)
	defer cancel()

	result, err := h.analyzer.Analyze(ctx, resumeText)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			// Keep the payload contract even on rejection.
			body := services.ErrorAnalysisResult(err.Error(), resumeText)
			body.ResumeName = fileHeader.Filename
			return c.Status(fiber.StatusBadRequest).JSON(body)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "analysis failed",
		})
	}

	if err := h.resumeCache.Set(ctx, fileHeader.Filename, resumeText); err != nil {
		h.logger.Warn("failed to cache resume context", zap.Error(err))
	}

	result.ResumeName = fileHeader.Filename
	h.persist(result, fileHeader.Filename, resumeText)

	return c.JSON(result)
}

// persist stores the analysis for later replay. Persistence failures are
// logged, not surfaced: the caller already has the result.
func (h *AnalyzeHandler) persist(result *services.AnalysisResult, resumeName, resumeText string) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		h.logger.Warn("failed to marshal analysis result", zap.Error(err))
		return
	}

	analysis := &models.Analysis{
		ID:                uuid.New(),
		ResumeName:        resumeName,
		ATSScore:          result.ATSScore,
		PredictedCategory: result.PredictedCategory,
		RecommendedJob:    result.RecommendedJob,
		ResumeText:        resumeText,
		ResultJSON:        string(resultJSON),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		h.logger.Warn("failed to persist analysis", zap.Error(err))
		return
	}

	result.AnalysisID = analysis.ID.String()
}
