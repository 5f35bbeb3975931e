package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"user-weather-service/cmd/api/di"
	ginrouter "user-weather-service/internal/adapter/gin/router"
	"user-weather-service/internal/config"
)

// Server wraps the HTTP server serving the REST API
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance with the router wired to the
// container's handlers
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	router := ginrouter.SetupRouter(c.UserHandler, c.WeatherHandler, l)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}
