package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appdelivery "jobtracker-backend/internal/application/delivery"
	appUsecase "jobtracker-backend/internal/application/usecase"
	"jobtracker-backend/internal/auth/delivery"
	authUsecase "jobtracker-backend/internal/auth/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc authUsecase.UserUsecase, appUc appUsecase.ApplicationUsecase) {
	authHandler := delivery.NewAuthHandler(authUc, userUc)
	appHandler := appdelivery.NewApplicationHandler(appUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/refresh", delivery.AuthMiddleware(authUc), authHandler.Refresh)
			auth.POST("/change-password", delivery.AuthMiddleware(authUc), authHandler.ChangePassword)
		}

		// Profile routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("/profile", authHandler.GetProfile)
			users.PUT("/profile", authHandler.UpdateProfile)
		}

		// Job application routes (protected)
		apps := api.Group("/job-applications")
		apps.Use(delivery.AuthMiddleware(authUc))
		{
			apps.POST("", appHandler.Create)
			apps.GET("", appHandler.List)
			apps.GET("/search", appHandler.SearchByCompany)
			apps.GET("/date-range", appHandler.ListByDateRange)
			apps.GET("/statistics", appHandler.Statistics)
			apps.GET("/status/:status", appHandler.ListByStatus)
			apps.GET("/:id", appHandler.Get)
			apps.PUT("/:id", appHandler.Update)
			apps.DELETE("/:id", appHandler.Delete)
		}
	}
}
