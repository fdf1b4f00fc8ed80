package routes

import (
	"context"
	"errors"
	"log"
	"log/slog"
	_ "murilov3d/docs" // This will be auto-generated
	"murilov3d/internal/adapter/http/handlers"
	repository2 "murilov3d/internal/adapter/persistence/repository"
	"murilov3d/internal/infrastructure/database"
	"murilov3d/internal/infrastructure/sheets"
	"murilov3d/internal/usecase"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db, err := database.ConnectSQLite()
	if err != nil {
		log.Fatalf("Failed to open the local database: %v", err)
	}

	catalogRepo := repository2.NewCatalogSQLiteRepository(db)
	quoteRepo := repository2.NewQuoteSQLiteRepository(db)
	settingsRepo := repository2.NewSettingsSQLiteRepository(db)

	syncUseCase := usecase.NewSyncUseCase(catalogRepo, quoteRepo, settingsRepo, sheets.NewClient())
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, syncUseCase)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogUseCase, syncUseCase)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addQuoteRoutes(v1, quoteHandler)
	addSyncRoutes(v1, syncHandler)

	pullOnStartup(syncUseCase)
}

// pullOnStartup adopts the remote state once at boot, in the background so a
// slow or dead endpoint never delays serving. Unconfigured is the normal
// first-run case and stays quiet.
func pullOnStartup(syncUseCase usecase.ISyncUseCase) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := syncUseCase.Pull(ctx); err != nil && !errors.Is(err, usecase.ErrSyncNotConfigured) {
			slog.Warn("startup mirror pull failed", "err", err)
		}
	}()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
