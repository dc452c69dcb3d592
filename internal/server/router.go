package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/arteva/arteva-backend/internal/handlers"
	"github.com/arteva/arteva-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware  *middleware.AuthMiddleware
	ProjectHandler  *handlers.ProjectHandler
	ExportHandler   *handlers.ExportHandler
	ProofHandler    *handlers.ProofHandler
	QuoteHandler    *handlers.QuoteHandler
	TemplateHandler *handlers.TemplateHandler
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("arteva-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		api.GET("/templates", cfg.TemplateHandler.List)
		api.POST("/templates/:id/apply", cfg.TemplateHandler.Apply)
		api.POST("/export/:format", cfg.ExportHandler.Export)
		api.POST("/proof", cfg.ProofHandler.Generate)
		api.POST("/quote", cfg.QuoteHandler.Generate)
		// Projects run against local or cloud depending on auth.
		api.POST("/projects", cfg.ProjectHandler.Save)
		api.GET("/projects", cfg.ProjectHandler.List)
		api.GET("/projects/public", cfg.ProjectHandler.ListPublic)
		api.GET("/projects/:id", cfg.ProjectHandler.Get)
		api.DELETE("/projects/:id", cfg.ProjectHandler.Delete)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/projects/migrate", cfg.ProjectHandler.Migrate)
		protected.GET("/projects/pending-migration", cfg.ProjectHandler.PendingMigration)
	}

	return router
}
