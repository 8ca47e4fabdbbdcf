package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/quotify/quotify-api/docs"
	"github.com/quotify/quotify-api/internal/api/handler"
	"github.com/quotify/quotify-api/internal/api/middleware"
	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
	"github.com/quotify/quotify-api/internal/core/service"
	"github.com/quotify/quotify-api/internal/infrastructure/config"
	"github.com/quotify/quotify-api/internal/infrastructure/db/sqlite"
	"github.com/quotify/quotify-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The Redis client and the AI client are optional; their routes degrade
// gracefully when absent.
func NewRouter(db *gorm.DB, rdb *redis.Client, aiClient ports.AiQuoteClient, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(logger.Get()))
	e.Use(echoprometheus.NewMiddleware("quotify"))

	// --- Repositories ---
	quoteRepo := sqlite.NewQuoteRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	suggestionRepo := sqlite.NewSuggestionRepository(db)
	likeRepo := sqlite.NewLikeRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	// --- Services ---
	quoteService := service.NewQuoteService(quoteRepo, categoryRepo, logger.Get())
	categoryService := service.NewCategoryService(categoryRepo, logger.Get())
	suggestionService := service.NewSuggestionService(suggestionRepo, categoryRepo, logger.Get())
	likeService := service.NewLikeService(likeRepo, quoteRepo, logger.Get())
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	likeHandler := handler.NewLikeHandler(likeService)
	aiHandler := handler.NewAiQuoteHandler(aiClient)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Quote routes ---
	e.GET("/quotes", quoteHandler.List)
	e.GET("/quotes/random", quoteHandler.Random)
	e.GET("/quotes/:id", quoteHandler.Get)
	e.POST("/quotes", quoteHandler.Create, authRequired, adminOnly)
	e.PATCH("/quotes/:id", quoteHandler.Update, authRequired, adminOnly)
	e.DELETE("/quotes/:id", quoteHandler.Delete, authRequired, adminOnly)

	// --- Category routes ---
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.Get)
	e.POST("/categories", categoryHandler.Create, authRequired, adminOnly)
	e.PATCH("/categories/:id", categoryHandler.Update, authRequired, adminOnly)
	e.DELETE("/categories/:id", categoryHandler.Delete, authRequired, adminOnly)

	// --- Suggestion routes ---
	e.POST("/suggestions", suggestionHandler.Submit, authRequired)
	e.GET("/suggestions/user", suggestionHandler.ListMine, authRequired)
	e.GET("/suggestions/user/random", suggestionHandler.RandomMine, authRequired)
	e.GET("/suggestions/admin/all", suggestionHandler.ListAll, authRequired, adminOnly)
	e.POST("/suggestions/:id/approve", suggestionHandler.Approve, authRequired, adminOnly)
	e.POST("/suggestions/:id/reject", suggestionHandler.Reject, authRequired, adminOnly)

	// --- Like routes ---
	e.POST("/likes", likeHandler.Like, authRequired)
	e.DELETE("/likes/:quote_id", likeHandler.Unlike, authRequired)
	e.GET("/likes/user", likeHandler.ListMine, authRequired)
	e.GET("/likes/user/:quote_id", likeHandler.IsLiked, authRequired)

	// --- AI generation ---
	e.POST("/ai-quotes", aiHandler.Generate, authRequired)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}

// requestLogger emits one structured log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
