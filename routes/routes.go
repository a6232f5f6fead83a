package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fortran01/loyalty-program-go/controllers"
	"github.com/fortran01/loyalty-program-go/metrics"
	"github.com/fortran01/loyalty-program-go/middleware"
)

func SetupRoutes(router *gin.Engine, loyalty *controllers.LoyaltyController) {
	// Public routes
	router.POST("/login", loyalty.Login)
	router.GET("/logout", loyalty.Logout)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/checkout", loyalty.Checkout)
		protected.GET("/products", controllers.GetProducts)
		protected.GET("/session", loyalty.VerifyAuth)
	}
}
