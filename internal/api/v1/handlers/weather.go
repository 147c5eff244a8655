package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-summary/internal/service"
	"ulascansenturk/weather-summary/internal/weather"
)

const RequestIDHeader = "X-Request-ID"

var validate = validator.New()

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

// NewWeatherHandler serves summaries, bounding each request by timeout.
func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/summary":
		h.GetSummary(w, r)
	case "/health":
		h.Health(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *WeatherHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coord, err := parseCoordinate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, requestID)

	ctx, cancel := context.WithTimeout(service.ContextWithRequestID(r.Context(), requestID), h.timeout)
	defer cancel()

	summary, err := h.weatherService.GetSummary(ctx, coord)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Float64("lat", coord.Latitude).
			Float64("lon", coord.Longitude).
			Msg("failed to get weather summary")
		status, detail := errorStatus(err)
		respondWithError(w, status, detail)
		return
	}

	respondWithJSON(w, http.StatusOK, SummaryResponse{
		Greeting:    summary.Greeting,
		Temperature: summary.Temperature,
		HeadsUp:     summary.HeadsUp,
	})
}

func parseCoordinate(r *http.Request) (weather.Coordinate, error) {
	query := r.URL.Query()

	lat, err := parseFloatParam(query.Get("lat"), "lat")
	if err != nil {
		return weather.Coordinate{}, err
	}
	lon, err := parseFloatParam(query.Get("lon"), "lon")
	if err != nil {
		return weather.Coordinate{}, err
	}

	if err := validate.Struct(summaryQuery{Latitude: lat, Longitude: lon}); err != nil {
		return weather.Coordinate{}, errors.New("lat must be in [-90, 90) and lon in [-180, 180)")
	}

	return weather.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s parameter must be a number", name)
	}
	return value, nil
}

func errorStatus(err error) (int, string) {
	var apiErr *weather.ExternalAPIError

	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, apiErr.Error()
	case errors.Is(err, weather.ErrTimedOut):
		return http.StatusGatewayTimeout, "weather summary timed out"
	default:
		return http.StatusInternalServerError, "failed to get weather summary"
	}
}
