package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hireview/hireview-backend/internal/config"
	"github.com/hireview/hireview-backend/internal/database"
	"github.com/hireview/hireview-backend/internal/extract"
	"github.com/hireview/hireview-backend/internal/handlers"
	"github.com/hireview/hireview-backend/internal/logger"
	"github.com/hireview/hireview-backend/internal/repositories"
	"github.com/hireview/hireview-backend/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatal("database connection failed", "error", err.Error())
	}
	zlog.Info("database connection established")

	resumeRepo := repositories.NewResumeRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)

	llmService, err := services.NewLLMService(cfg.GoogleAPIKey, cfg.ModelCandidates(), zlog)
	if err != nil {
		zlog.Fatal("failed to create Gemini client", "error", err.Error())
	}

	extractor := &extract.Extractor{MaxPDFPages: cfg.MaxPDFPages}
	resumeService := services.NewResumeService(extractor, llmService, resumeRepo, zlog)
	interviewService := services.NewInterviewService(llmService, resumeRepo, interviewRepo, zlog)
	candidateService := services.NewCandidateService(resumeRepo)

	cvParseHandler := handlers.NewCvParseHandler(resumeService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/cv-parse/generate", cvParseHandler.GenerateParse)
		api.POST("/cv-parse", cvParseHandler.CreateParse)

		api.POST("/interview/generate", interviewHandler.Generate)

		api.GET("/candidates", candidateHandler.List)
		api.GET("/candidates/search", candidateHandler.Search)
		api.GET("/candidates/:id", candidateHandler.Get)
	}

	zlog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed to start", "error", err.Error())
	}
}
