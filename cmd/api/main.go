package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartguider/internal/ai"
	"smartguider/internal/config"
	"smartguider/internal/database"
	"smartguider/internal/finance"
	"smartguider/internal/logger"
	"smartguider/internal/mongodb"
	"smartguider/internal/router"
	"smartguider/internal/services"
	"smartguider/internal/validator"
)

// @title           Smart Guider API
// @version         1.0
// @description     Smart Guider tracks income, expenses, savings goals and investments, applies a needs/wants/savings budget rule and offers AI advice.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// insightHistoryCapacity bounds the in-process history per user when no
// MongoDB is configured.
const insightHistoryCapacity = 50

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(database.DefaultMigrationsDir); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Insight history
	var insightStore services.InsightStore
	if appConfig.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, err := mongodb.Connect(connectCtx, appConfig.MongoURI, appConfig.MongoDatabase)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer store.Close(context.Background())
		insightStore = store
		log.Infow("Insight history stored in MongoDB", "database", appConfig.MongoDatabase)
	} else {
		insightStore = services.NewMemoryInsightStore(insightHistoryCapacity)
		log.Info("MONGO_URI not set, keeping insight history in memory")
	}

	// AI advisor
	var advisor ai.Advisor = ai.Disabled{}
	if appConfig.AIEnabled() {
		advisor = ai.NewClient(ai.Config{
			APIKey:  appConfig.AIAPIKey,
			BaseURL: appConfig.AIBaseURL,
			Model:   appConfig.AIModel,
			Timeout: appConfig.AITimeout,
		})
		log.Infow("AI advisor enabled", "model", appConfig.AIModel)
	} else {
		log.Warn("AI_API_KEY not set, AI insights are disabled")
	}

	// Initialize services
	db := dbManager.DB()
	clock := finance.SystemClock{Location: appConfig.Location}
	svc := router.Services{
		User:       services.NewUserService(db),
		Expense:    services.NewExpenseService(db, clock),
		Goal:       services.NewGoalService(db),
		Investment: services.NewInvestmentService(db),
		Dashboard:  services.NewDashboardService(db, clock),
		Insight:    services.NewInsightService(db, advisor, insightStore, clock),
		Audit:      services.NewAuditService(db),
	}

	validator.Register()

	engine := router.New(svc, router.Options{
		CORSOrigin:  appConfig.CORSOrigin,
		Location:    appConfig.Location,
		Clock:       clock,
		HealthCheck: dbManager.Ping,
		Swagger:     appConfig.Env != "production",
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Smart Guider backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
