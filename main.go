package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snipvault/api/audit"
	"github.com/snipvault/api/config"
	"github.com/snipvault/api/controller"
	"github.com/snipvault/api/db"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/router"
	"github.com/snipvault/api/service"
	"github.com/snipvault/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Neo4j
	if err := db.InitNeo4j(); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Read and validate cache TTL configuration; a bad TTL aborts
	// startup rather than caching forever or never.
	ttls, err := loadCacheTTLs()
	if err != nil {
		logger.Fatal("Invalid cache configuration", zap.Error(err))
	}

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	notificationService := util.NewNotificationService()
	cacheBackend := db.NewRedisCache(db.RedisClient)
	cacheService, err := util.NewCacheService(cacheBackend, ttls)
	if err != nil {
		logger.Fatal("Failed to initialize cache service", zap.Error(err))
	}
	invalidator := util.NewCacheInvalidator(cacheBackend)
	tokens := util.NewTokenManager(
		config.GetString("auth.secret"),
		config.GetString("auth.issuer"),
		config.GetDuration("auth.accessTTL"),
		config.GetDuration("auth.refreshTTL"),
	)
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize services
	services, err := service.InitializeServices(
		db.Neo4jDriver,
		auditService,
		validationUtil,
		cacheService,
		invalidator,
		notificationService,
		tokens,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services, auditService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		tokens,
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func loadCacheTTLs() (util.CacheTTLs, error) {
	var ttls util.CacheTTLs
	var err error
	if ttls.SnippetList, err = config.CacheTTL("cache.snippetListTTL"); err != nil {
		return util.CacheTTLs{}, err
	}
	if ttls.SnippetDetail, err = config.CacheTTL("cache.snippetDetailTTL"); err != nil {
		return util.CacheTTLs{}, err
	}
	if ttls.TagList, err = config.CacheTTL("cache.tagListTTL"); err != nil {
		return util.CacheTTLs{}, err
	}
	if ttls.TagDetail, err = config.CacheTTL("cache.tagDetailTTL"); err != nil {
		return util.CacheTTLs{}, err
	}
	return ttls, nil
}
