package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/moneywise/finance-tracker/internal/domain/usecase/auth"
	categoryUseCase "github.com/moneywise/finance-tracker/internal/domain/usecase/category"
	userUseCase "github.com/moneywise/finance-tracker/internal/domain/usecase/user"

	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/crypto"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/moneywise/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/token"
	"github.com/moneywise/finance-tracker/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	refreshTokenRepo := repository.NewRefreshTokenRepository(dbManager.DB(), appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager.DB(), appLogger)
	userCategoryRepo := repository.NewUserCategoryRepository(dbManager.DB(), appLogger)

	uow := database.NewUnitOfWork(dbManager.DB(), appLogger)

	// Auth collaborators
	signer, err := token.NewJWTSigner(cfg.Auth.Secret, cfg.Auth.AccessTokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token signer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Use cases
	authService := authUseCase.NewService(
		userRepo, refreshTokenRepo, hasher, signer, tp, appLogger, cfg.Auth.RefreshTokenTTL)
	categoryService := categoryUseCase.NewService(
		categoryRepo, userCategoryRepo, userRepo, uow, tp, appLogger)
	userService := userUseCase.NewService(userRepo, uow, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, authService, appLogger)
	userHandler := handler.NewUserHandler(userService, authService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, categoryHandler, userHandler, signer, userRepo, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
