package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"user-weather-service/internal/adapter/gin/handler"
	"user-weather-service/internal/adapter/gin/middleware"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	weatherHandler *handler.WeatherHandler,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "user-weather-service",
		})
	})

	// Swagger UI backed by the static OpenAPI document
	swaggerUI := httpSwagger.Handler(httpSwagger.URL("/swagger/openapi.json"))
	router.GET("/swagger/*any", func(c *gin.Context) {
		if c.Param("any") == "/openapi.json" {
			c.File("./api/openapi.json")
			return
		}
		swaggerUI.ServeHTTP(c.Writer, c.Request)
	})

	users := router.Group("/user")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	router.GET("/weather", weatherHandler.GetWeather)

	return router
}
