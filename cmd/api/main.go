package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/talentscout/internal/config"
	"alfredoptarigan/talentscout/internal/handlers"
	"alfredoptarigan/talentscout/internal/redact"
	"alfredoptarigan/talentscout/internal/repositories"
	"alfredoptarigan/talentscout/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize candidate log
	candidateRepo, err := repositories.NewCandidateRepository(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("❌ Failed to initialize candidate log: %v", err)
	}
	log.Printf("✅ Candidate log ready at %s\n", candidateRepo.Path())

	// Initialize Gemini AI. A missing or broken credential degrades every
	// gateway call to its fallback path instead of crashing the service.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, running degraded: all model calls will use fallbacks")
	} else {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("⚠️  Failed to initialize Gemini AI, running degraded: %v\n", err)
			geminiService = nil
		} else {
			log.Println("✅ Gemini AI initialized successfully")
		}
	}

	// Initialize services
	assistantService := services.NewAssistantService(geminiService, cfg.Gemini.Timeout)
	redactor := redact.NewRedactor(cfg.Redact.Salt)
	conversationService := services.NewConversationService(assistantService, redactor, candidateRepo)
	sessionManager := services.NewSessionManager(conversationService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionManager, conversationService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentScout Intake API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		gemini := "ok"
		if geminiService == nil {
			gemini = "unconfigured"
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"gemini": gemini,
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreate)
	api.Get("/sessions/:id", sessionHandler.HandleGetSession)
	api.Post("/sessions/:id/messages", sessionHandler.HandleMessage)
	api.Get("/sessions/:id/summary", sessionHandler.HandleSummary)
	api.Post("/sessions/:id/restart", sessionHandler.HandleRestart)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentScout Intake API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/messages",
				"GET /api/v1/sessions/:id/summary",
				"POST /api/v1/sessions/:id/restart",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
