package main

import (
	"log"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/cache"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/config"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/database"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/evaluator"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/handler"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/llm"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/question"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis cache (fail-open)
	}

	// Generative model client. With no API key configured every call fails
	// fast, so question generation reads the bank and answers get the
	// deterministic evaluator.
	completer := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.LLMTimeout)

	var scorer evaluator.Scorer
	if cfg.OpenAIAPIKey != "" {
		scorer = evaluator.New(completer)
	} else {
		log.Println("OPENAI_API_KEY not set, using heuristic answer evaluator")
		scorer = evaluator.Heuristic{}
	}

	questionSource := question.NewSource(db, completer, redisCache)

	googleConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, cfg.JWTSecret, googleConfig, cfg.FrontendURL)
	interviewHandler := handler.NewInterviewHandler(db, questionSource, scorer)
	resumeHandler := handler.NewResumeHandler(db, completer)

	// Setup router
	r := gin.Default()

	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// OAuth entry points live outside the API group
	r.GET("/auth/google", authHandler.GoogleAuth)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)

	// API routes
	api := r.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.RefreshToken)
		api.POST("/auth/logout", authHandler.Logout)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			authorized.GET("/auth/me", authHandler.Me)

			authorized.POST("/interview/start", interviewHandler.Start)
			authorized.POST("/interview/answer", interviewHandler.SubmitAnswer)
			authorized.GET("/interview/:id", interviewHandler.Get)
			authorized.GET("/interviews", interviewHandler.List)

			authorized.POST("/resume/analyze", resumeHandler.Analyze)
			authorized.GET("/resumes", resumeHandler.List)
		}
	}

	log.Printf("API server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
