package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/andregumieri/fiap-brigalab/docs" // Import generated docs
	"github.com/andregumieri/fiap-brigalab/internal/auth"
	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/config"
	"github.com/andregumieri/fiap-brigalab/internal/controllers"
	"github.com/andregumieri/fiap-brigalab/internal/database"
	"github.com/andregumieri/fiap-brigalab/internal/middleware"
	"github.com/andregumieri/fiap-brigalab/internal/order"
	"github.com/andregumieri/fiap-brigalab/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const sweepInterval = time.Minute

// @title Brigalab Storefront API
// @version 1.0
// @description Build a brigadeiro cup, preview it and manage "minha caixa" before checkout
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection and load the catalog
	db := setupDatabase(configuration)
	cat := loadCatalog(db)

	// Initialize services and controllers
	sessionService := services.NewSessionService(cat, configuration.UnitPrice, configuration.SessionTTL)
	tokenIssuer := auth.NewTokenIssuer(configuration.SessionSecret, configuration.SessionTTL)
	storefrontController := controllers.NewStorefrontController(cat, sessionService, tokenIssuer, order.DeferredSubmitter{})

	router := setupRouter(storefrontController, tokenIssuer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessionService)

	server := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. The level comes
// from the environment and LOG_LEVEL overrides it when set to a valid level.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(conf.Environment)
	if conf.LogLevel != "" {
		if parsed, err := log.ParseLevel(conf.LogLevel); err == nil {
			level = parsed
		} else {
			log.WithField("log_level", conf.LogLevel).Warn("Unknown LOG_LEVEL, using environment default")
		}
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection using the configured driver
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)
	return db
}

// loadCatalog seeds the catalog on first run and reads it back
func loadCatalog(db *gorm.DB) catalog.Catalog {
	ctx := context.Background()
	catalogService := services.NewCatalogService(db)
	checkPanicErr(catalogService.Migrate(ctx))

	seeded, err := catalogService.Seed(ctx, catalog.Default())
	checkPanicErr(err)
	if seeded {
		log.Info("Database was empty, seeded the default catalog")
	}

	cat, err := catalogService.Load(ctx)
	checkPanicErr(err)
	log.WithFields(log.Fields{
		"bases":    len(cat.Bases),
		"toppings": len(cat.Toppings),
	}).Info("Catalog ready")
	return cat
}

// sweepSessions drops idle sessions until ctx is cancelled
func sweepSessions(ctx context.Context, sessions services.SessionService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sessions.Expire(now)
		}
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(sc controllers.StorefrontController, tokens *auth.TokenIssuer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log.StandardLogger()))

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router, sc, middleware.SessionAuth(tokens))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "brigalab-storefront",
	})
}
