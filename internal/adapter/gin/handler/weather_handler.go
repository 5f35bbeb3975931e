package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-weather-service/internal/usecase/weather"
)

// WeatherHandler handles HTTP requests for the weather proxy
type WeatherHandler struct {
	uc  weather.Usecase
	log *zap.Logger
}

// NewWeatherHandler creates a new WeatherHandler instance
func NewWeatherHandler(uc weather.Usecase, log *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		uc:  uc,
		log: log,
	}
}

// GetWeather handles GET /weather
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondValidationError(c, []string{"name is required"})
		return
	}

	snapshot, err := h.uc.GetCurrentWeather(c.Request.Context(), name)
	if err != nil {
		h.log.Error("fetch weather failed", zap.String("name", name), zap.Error(err))
		respondError(c, err, "Failed to fetch weather data")
		return
	}

	respondOK(c, snapshot, "Current weather data fetched successfully")
}
