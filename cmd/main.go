package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arteva/arteva-backend/internal/clients/bucket"
	"github.com/arteva/arteva-backend/internal/clients/redisbus"
	"github.com/arteva/arteva-backend/internal/db"
	"github.com/arteva/arteva-backend/internal/handlers"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/middleware"
	"github.com/arteva/arteva-backend/internal/observability"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/repos"
	"github.com/arteva/arteva-backend/internal/server"
	"github.com/arteva/arteva-backend/internal/services"
	"github.com/arteva/arteva-backend/internal/storage"
	"github.com/arteva/arteva-backend/internal/templates"
	"github.com/arteva/arteva-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing (no-op unless OTEL_ENABLED)
	otelShutdown := observability.Setup(context.Background(), log)
	defer otelShutdown(context.Background())

	// Postgres (cloud store)
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Sqlite (local offline store)
	sqliteService, err := db.NewSqliteService(log)
	if err != nil {
		log.Error("Sqlite init failed", "error", err)
		os.Exit(1)
	}
	if err = sqliteService.AutoMigrateAll(); err != nil {
		log.Error("Sqlite auto migration failed", "error", err)
		os.Exit(1)
	}
	theLocal := sqliteService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	projectRepo := repos.NewProjectRepo(thePG, log)
	localProjectRepo := repos.NewLocalProjectRepo(theLocal, log)

	// Stores
	localStore := storage.NewLocalStore(localProjectRepo, log)
	cloudStore := storage.NewCloudStore(projectRepo, log)
	migrator := storage.NewMigrator(localStore, cloudStore, log)

	// Clients (both optional; the editor core works without them)
	bucketService, err := bucket.NewService(log)
	if err != nil {
		log.Warn("Could not init BucketService", "error", err)
		bucketService = nil
	}
	eventBus, err := redisbus.NewEventBus(log)
	if err != nil {
		log.Warn("Could not init EventBus", "error", err)
		eventBus = nil
	}

	// Template catalog
	var catalog *templates.Catalog
	catalogPath := utils.GetEnv("TEMPLATE_CATALOG_PATH", "configs/templates.yaml", log)
	catalog, err = templates.LoadCatalog(catalogPath, log)
	if err != nil {
		log.Warn("Template catalog unavailable, starting empty", "error", err)
		catalog = templates.NewCatalog(nil, log)
	}

	// Services
	log.Info("Setting up Services from main...")
	renderer := render.NewRenderer(log)
	projectService := services.NewProjectService(log, renderer, bucketService)
	exportService := services.NewExportService(log, renderer)
	proofService := services.NewProofService(log, renderer, eventBus, bucketService)
	quoteService := services.NewQuoteService(log, proofService)
	templateService := services.NewTemplateService(log, catalog)

	// Handlers
	log.Info("Setting up handlers from main...")
	projectHandler := handlers.NewProjectHandler(log, projectService, localStore, cloudStore, migrator)
	exportHandler := handlers.NewExportHandler(log, exportService)
	proofHandler := handlers.NewProofHandler(log, proofService)
	quoteHandler := handlers.NewQuoteHandler(log, quoteService)
	templateHandler := handlers.NewTemplateHandler(log, templateService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:  authMiddleware,
		ProjectHandler:  projectHandler,
		ExportHandler:   exportHandler,
		ProofHandler:    proofHandler,
		QuoteHandler:    quoteHandler,
		TemplateHandler: templateHandler,
	})

	port := utils.GetEnvAsInt("PORT", 8080, log)
	fmt.Printf("Server listening on :%d\n", port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
