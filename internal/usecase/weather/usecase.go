package weather

import (
	"context"

	"go.uber.org/zap"

	"user-weather-service/internal/adapter/weatherstack"
	domain "user-weather-service/internal/domain/weather"
)

// Provider is the port to the outbound weather API.
type Provider interface {
	FetchCurrent(ctx context.Context, query string) (*weatherstack.APIResponse, error)
}

// Usecase defines the interface for the weather proxy operation.
type Usecase interface {
	GetCurrentWeather(ctx context.Context, location string) (*domain.CurrentSnapshot, error)
}

// Service fetches the current weather for a named location and projects the
// provider payload down to the snapshot field set. Nothing is cached; one
// outbound call is made per request.
type Service struct {
	provider Provider
	log      *zap.Logger
}

// New creates a new weather Service.
func New(p Provider, log *zap.Logger) *Service {
	return &Service{provider: p, log: log}
}

// GetCurrentWeather performs the outbound fetch and maps the result.
// Provider failures propagate unchanged to the handler's 500 path.
func (s *Service) GetCurrentWeather(ctx context.Context, location string) (*domain.CurrentSnapshot, error) {
	s.log.Info("fetching current weather", zap.String("location", location))

	payload, err := s.provider.FetchCurrent(ctx, location)
	if err != nil {
		s.log.Error("failed to fetch current weather", zap.String("location", location), zap.Error(err))
		return nil, err
	}

	return mapCurrent(payload), nil
}

// mapCurrent projects the provider payload to the snapshot, discarding
// request echo, geocoding, astronomy and air quality metadata.
func mapCurrent(payload *weatherstack.APIResponse) *domain.CurrentSnapshot {
	cur := payload.Current
	return &domain.CurrentSnapshot{
		Temperature:         cur.Temperature,
		WeatherCode:         cur.WeatherCode,
		WeatherIcons:        cur.WeatherIcons,
		WeatherDescriptions: cur.WeatherDescriptions,
		WindSpeed:           cur.WindSpeed,
		WindDegree:          cur.WindDegree,
		WindDir:             cur.WindDir,
		Pressure:            cur.Pressure,
		Precip:              cur.Precip,
		Humidity:            cur.Humidity,
		CloudCover:          cur.CloudCover,
		FeelsLike:           cur.FeelsLike,
		UVIndex:             cur.UVIndex,
		Visibility:          cur.Visibility,
		IsDay:               cur.IsDay,
	}
}
