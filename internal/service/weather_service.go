package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-summary/internal/db/summaryquery"
	"ulascansenturk/weather-summary/internal/weather"
)

type WeatherService interface {
	GetSummary(ctx context.Context, coord weather.Coordinate) (weather.Summary, error)
}

type requestIDKey struct{}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

type weatherService struct {
	aggregator       WeatherRequestAggregator
	summaryQueryRepo summaryquery.Repository
}

// NewWeatherService builds the summary facade. summaryQueryRepo may be nil,
// in which case requests are not audited.
func NewWeatherService(aggregator WeatherRequestAggregator, summaryQueryRepo summaryquery.Repository) WeatherService {
	return &weatherService{
		aggregator:       aggregator,
		summaryQueryRepo: summaryQueryRepo,
	}
}

func (s *weatherService) GetSummary(ctx context.Context, coord weather.Coordinate) (weather.Summary, error) {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	startedAt := time.Now()
	summary, err := s.summarize(ctx, coord)
	elapsed := time.Since(startedAt)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("request_id", requestID).
		Float64("lat", coord.Latitude).
		Float64("lon", coord.Longitude).
		Dur("elapsed", elapsed).
		Msg("weather summary requested")

	if s.summaryQueryRepo != nil {
		outcome, upstreamStatus := classifyOutcome(err)
		go func() {
			if logErr := s.summaryQueryRepo.LogSummaryQuery(requestID, coord, outcome, upstreamStatus, elapsed); logErr != nil {
				log.Error().Err(logErr).Str("request_id", requestID).Msg("failed to log summary query")
			}
		}()
	}

	if err != nil {
		return weather.Summary{}, err
	}
	return summary, nil
}

func (s *weatherService) summarize(ctx context.Context, coord weather.Coordinate) (weather.Summary, error) {
	samples, err := s.aggregator.FetchAll(ctx, coord)
	if err != nil {
		return weather.Summary{}, err
	}

	if samples == nil || samples.Current == nil || len(samples.Forecast) == 0 || len(samples.Historical) == 0 {
		return weather.Summary{}, fmt.Errorf("incomplete weather batch: %w", weather.ErrInsufficientData)
	}

	temperature, err := DecideTemperatureNote(*samples.Current, samples.Historical)
	if err != nil {
		return weather.Summary{}, err
	}

	return weather.Summary{
		Greeting:    DecideGreeting(*samples.Current),
		Temperature: temperature,
		HeadsUp:     DecideHeadsUp(samples.Forecast),
	}, nil
}

func classifyOutcome(err error) (string, int) {
	var apiErr *weather.ExternalAPIError

	switch {
	case err == nil:
		return summaryquery.OutcomeOK, 0
	case errors.As(err, &apiErr):
		return summaryquery.OutcomeUpstreamError, apiErr.StatusCode
	case errors.Is(err, weather.ErrTimedOut):
		return summaryquery.OutcomeTimedOut, 0
	case errors.Is(err, weather.ErrInsufficientData):
		return summaryquery.OutcomeInsufficientData, 0
	default:
		return summaryquery.OutcomeError, 0
	}
}
