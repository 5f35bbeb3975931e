package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-weather-service/internal/adapter/weatherstack"
	domain "user-weather-service/internal/domain/weather"
)

// MockProvider is a mock implementation of the Provider port.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) FetchCurrent(ctx context.Context, query string) (*weatherstack.APIResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weatherstack.APIResponse), args.Error(1)
}

func samplePayload() *weatherstack.APIResponse {
	return &weatherstack.APIResponse{
		Location: weatherstack.Location{Name: "London", Country: "United Kingdom"},
		Current: weatherstack.Current{
			ObservationTime:     "06:45 AM",
			Temperature:         9,
			WeatherCode:         296,
			WeatherIcons:        []string{"https://cdn.example.com/rain.png"},
			WeatherDescriptions: []string{"Light rain"},
			WindSpeed:           19,
			WindDegree:          210,
			WindDir:             "SSW",
			Pressure:            1003,
			Precip:              1.4,
			Humidity:            87,
			CloudCover:          75,
			FeelsLike:           7,
			UVIndex:             1,
			Visibility:          9,
			IsDay:               "no",
		},
	}
}

func TestService_GetCurrentWeather(t *testing.T) {
	t.Run("maps provider payload to snapshot", func(t *testing.T) {
		provider := new(MockProvider)
		svc := New(provider, zaptest.NewLogger(t))

		provider.On("FetchCurrent", mock.Anything, "London").Return(samplePayload(), nil)

		snap, err := svc.GetCurrentWeather(context.Background(), "London")
		require.NoError(t, err)
		require.NotNil(t, snap)

		want := &domain.CurrentSnapshot{
			Temperature:         9,
			WeatherCode:         296,
			WeatherIcons:        []string{"https://cdn.example.com/rain.png"},
			WeatherDescriptions: []string{"Light rain"},
			WindSpeed:           19,
			WindDegree:          210,
			WindDir:             "SSW",
			Pressure:            1003,
			Precip:              1.4,
			Humidity:            87,
			CloudCover:          75,
			FeelsLike:           7,
			UVIndex:             1,
			Visibility:          9,
			IsDay:               "no",
		}
		assert.Equal(t, want, snap)
		provider.AssertExpectations(t)
	})

	t.Run("provider error propagates unchanged", func(t *testing.T) {
		provider := new(MockProvider)
		svc := New(provider, zaptest.NewLogger(t))

		upstreamErr := errors.New("error fetching weather data: Unauthorized")
		provider.On("FetchCurrent", mock.Anything, "London").Return(nil, upstreamErr)

		snap, err := svc.GetCurrentWeather(context.Background(), "London")
		assert.Nil(t, snap)
		assert.Equal(t, upstreamErr, err)
		provider.AssertExpectations(t)
	})
}
