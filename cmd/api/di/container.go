package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-weather-service/cmd/api/infrastructure"
	"user-weather-service/internal/adapter/cache"
	"user-weather-service/internal/adapter/db/postgres"
	ginhandler "user-weather-service/internal/adapter/gin/handler"
	"user-weather-service/internal/adapter/repository/cached"
	"user-weather-service/internal/adapter/weatherstack"
	"user-weather-service/internal/config"
	"user-weather-service/internal/usecase/user"
	"user-weather-service/internal/usecase/weather"
	redisclient "user-weather-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	DB             *gorm.DB
	RedisClient    *redisclient.Client
	UserUC         user.Usecase
	WeatherUC      weather.Usecase
	UserHandler    *ginhandler.UserHandler
	WeatherHandler *ginhandler.WeatherHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// The user cache is opt-in; with it disabled the repository goes
	// straight to the database and no Redis connection is made.
	var rdb *redisclient.Client
	var userCache cache.UserCache
	if cfg.Redis.CacheEnabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		userCache = cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
	}

	dbRepo := postgres.NewUserRepoPG(db, l)
	repo := cached.NewUserRepository(dbRepo, userCache, l)

	userUC := user.New(repo, l)

	weatherClient := weatherstack.NewClient(cfg.Weather.BaseURL, cfg.Weather.AccessKey, nil, l)
	weatherUC := weather.New(weatherClient, l)

	return &Container{
		Config:         cfg,
		Logger:         l,
		DB:             db,
		RedisClient:    rdb,
		UserUC:         userUC,
		WeatherUC:      weatherUC,
		UserHandler:    ginhandler.NewUserHandler(userUC, l),
		WeatherHandler: ginhandler.NewWeatherHandler(weatherUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
