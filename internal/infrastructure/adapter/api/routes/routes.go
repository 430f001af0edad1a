package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/persistence"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	signer coreport.TokenSigner,
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) {
	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
	}

	authenticated := v1.Group("")
	authenticated.Use(middleware.Auth(signer, userRepo, logger))
	{
		categoryRoutes := authenticated.Group("/categories")
		{
			categoryRoutes.POST("", categoryHandler.Create)
			categoryRoutes.POST("/:categoryId/assign", categoryHandler.Assign)
			categoryRoutes.DELETE("/:categoryId", categoryHandler.Remove)
			categoryRoutes.PUT("/:categoryId/budget", categoryHandler.SetBudget)
			categoryRoutes.DELETE("/:categoryId/budget", categoryHandler.DeleteBudget)
		}

		userRoutes := authenticated.Group("/users")
		{
			userRoutes.GET("/me", userHandler.Me)
			userRoutes.DELETE("/me", userHandler.DeleteMe)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
