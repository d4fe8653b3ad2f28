package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"resumelens/resume-analyzer/internal/config"
	"resumelens/resume-analyzer/internal/handlers"
	"resumelens/resume-analyzer/internal/logger"
	"resumelens/resume-analyzer/internal/repositories"
	"resumelens/resume-analyzer/internal/services"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env == "production", cfg.Server.Env == "development")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("✅ Config loaded successfully")

	// Database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal("❌ Failed to initialize database", zap.Error(err))
	}
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Info("✅ Database connected and migrated")

	// Resume-context cache: Redis when configured, in-process TTL store
	// otherwise.
	var resumeCache repositories.ResumeCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		resumeCache = repositories.NewResumeECache(eredis.NewCache(client), cfg.Cache.ResumeTTL)
		log.Info("✅ Redis resume cache initialized", zap.String("addr", cfg.Redis.Addr))
	} else {
		resumeCache = repositories.NewMemoryResumeCache(cfg.Cache.ResumeTTL)
		log.Info("✅ In-memory resume cache initialized", zap.Duration("ttl", cfg.Cache.ResumeTTL))
	}

	// Storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}
	documentSource := services.NewDocumentSource()

	// Extraction
	vocab := services.DefaultSkillVocabulary()
	skillExtractor := services.NewSkillExtractor(vocab)
	contactExtractor := services.NewContactExtractor(skillExtractor)

	// Gemini: embedding capability plus generative classifier. Both are
	// optional; without an API key the evaluator takes its neutral path and
	// prediction falls back to the rule policy.
	var embedder services.Embedder
	var predictor services.Predictor
	if cfg.Gemini.APIKey != "" {
		geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, log)
		if err != nil {
			log.Warn("⚠️ Gemini unavailable, degrading to rule-based prediction", zap.Error(err))
			predictor = services.NewRulePredictor()
		} else {
			embedder = geminiService
			predictor = services.NewGeminiPredictor(geminiService, log)
			log.Info("✅ Gemini AI initialized")
		}
	} else {
		predictor = services.NewRulePredictor()
		log.Info("✅ Rule-based predictor selected (no GEMINI_API_KEY)")
	}

	// Qdrant job-posting index (optional)
	var jobIndex services.JobIndexService
	if cfg.Qdrant.URL != "" {
		jobIndex, err = services.NewJobIndexService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
		if err != nil {
			log.Warn("⚠️ Qdrant unavailable, similar-posting search disabled", zap.Error(err))
			jobIndex = nil
		} else if err := jobIndex.InitCollection(); err != nil {
			log.Warn("⚠️ Qdrant collection init failed, similar-posting search disabled", zap.Error(err))
			jobIndex = nil
		} else {
			log.Info("✅ Qdrant job index initialized")
		}
	}

	// Scoring core
	weights := services.DefaultATSWeights()
	weights.OptimalLength = cfg.Scoring.OptimalLengthPoints
	weights.OffLength = cfg.Scoring.OffLengthPoints
	weights.SkillCoverage = cfg.Scoring.SkillCoveragePoints
	weights.DeepSkillBonus = cfg.Scoring.DeepSkillBonusPoints
	weights.EmailPresent = cfg.Scoring.EmailPoints
	weights.PhonePresent = cfg.Scoring.PhonePoints
	weights.SectionKeywords = cfg.Scoring.SectionKeywordPoints

	atsScorer := services.NewATSScorer(weights)
	gapAnalyzer := services.NewGapAnalyzer()
	tipGenerator := services.NewTipGenerator()
	questionGenerator := services.NewQuestionGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	radarGenerator := services.NewRadarGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	analyzer := services.NewAnalyzer(
		contactExtractor,
		predictor,
		atsScorer,
		gapAnalyzer,
		tipGenerator,
		questionGenerator,
		radarGenerator,
		log,
	)
	evaluator := services.NewAnswerEvaluator(skillExtractor, embedder, log)
	matchService := services.NewMatchService(skillExtractor, embedder, jobIndex, log)
	log.Info("✅ Services initialized successfully")

	// Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer, documentSource, storageService, analysisRepo, resumeCache, cfg.Storage.MaxFileSize, log)
	evaluateHandler := handlers.NewEvaluateHandler(evaluator, resumeCache, log)
	matchHandler := handlers.NewMatchHandler(matchService, resumeCache, log)
	generateHandler := handlers.NewGenerateHandler(questionGenerator, skillExtractor, predictor, resumeCache, log)
	resultHandler := handlers.NewResultHandler(analysisRepo)
	log.Info("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/interview/generate", generateHandler.HandleGenerate)
	api.Post("/interview/evaluate", evaluateHandler.HandleEvaluate)
	api.Post("/interview/evaluate/text", evaluateHandler.HandleEvaluateText)
	api.Get("/result/:id", resultHandler.HandleGetResult)
	api.Get("/results", resultHandler.HandleListResults)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/match",
				"POST /api/v1/interview/generate",
				"POST /api/v1/interview/evaluate",
				"POST /api/v1/interview/evaluate/text",
				"GET /api/v1/result/:id",
				"GET /api/v1/results",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if mc, ok := resumeCache.(*repositories.MemoryResumeCache); ok {
			mc.Close()
		}
		if err := app.Shutdown(); err != nil {
			log.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
