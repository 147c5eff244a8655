package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"ulascansenturk/weather-summary/internal/weather"
)

const DefaultBaseURL = "https://thirdparty-weather-api-v2.droom.workers.dev"

type WeatherBotClient interface {
	Current(ctx context.Context, coord weather.Coordinate) (weather.CurrentSample, error)
	ForecastHourly(ctx context.Context, coord weather.Coordinate, hourOffset int) (weather.ForecastSample, error)
	HistoricalHourly(ctx context.Context, coord weather.Coordinate, hourOffset int) (weather.HistoricalSample, error)
}

type Option func(*weatherBotClient)

// WithHTTPClient replaces the default client. The default has no timeout;
// deadlines come from the request context.
func WithHTTPClient(client *http.Client) Option {
	return func(c *weatherBotClient) {
		c.client = client
	}
}

func WithCircuitBreaker(settings gobreaker.Settings) Option {
	return func(c *weatherBotClient) {
		c.breaker = gobreaker.NewTwoStepCircuitBreaker(settings)
	}
}

type weatherBotClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.TwoStepCircuitBreaker
}

func NewWeatherBotClient(baseURL, apiKey string, opts ...Option) WeatherBotClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &weatherBotClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CircuitBreakerSettings trips after maxFailures consecutive provider failures
// and stays open for openTimeout. Client errors (4xx) do not count against the
// provider and cancelled requests are not counted at all. halfOpenRequests is
// how many trial calls are let through after the open period; it must cover a
// whole summary batch or the first batch after recovery is rejected.
func CircuitBreakerSettings(maxFailures, halfOpenRequests uint32, openTimeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "weatherbot",
		MaxRequests: max(halfOpenRequests, 1),
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}
}

type CurrentResponse struct {
	Timestamp *int64  `json:"timestamp"`
	Code      *int    `json:"code"`
	Temp      float64 `json:"temp"`
	Rain1h    float64 `json:"rain1h"`
}

type ForecastHourlyResponse struct {
	Timestamp *int64  `json:"timestamp"`
	Code      *int    `json:"code"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Rain      float64 `json:"rain"`
}

type HistoricalHourlyResponse struct {
	Timestamp *int64  `json:"timestamp"`
	Code      *int    `json:"code"`
	Temp      float64 `json:"temp"`
	Rain1h    float64 `json:"rain1h"`
}

type providerResponse struct {
	statusCode int
	body       []byte
}

func (c *weatherBotClient) Current(ctx context.Context, coord weather.Coordinate) (weather.CurrentSample, error) {
	var apiResp CurrentResponse
	if err := c.getJSON(ctx, "/current", coord, nil, &apiResp); err != nil {
		return weather.CurrentSample{}, err
	}

	ts, code, err := validateRecord(apiResp.Timestamp, apiResp.Code)
	if err != nil {
		return weather.CurrentSample{}, err
	}

	return weather.CurrentSample{
		Timestamp:      ts,
		Code:           code,
		Temperature:    apiResp.Temp,
		RainLastHourMm: apiResp.Rain1h,
	}, nil
}

func (c *weatherBotClient) ForecastHourly(ctx context.Context, coord weather.Coordinate, hourOffset int) (weather.ForecastSample, error) {
	var apiResp ForecastHourlyResponse
	if err := c.getJSON(ctx, "/forecast/hourly", coord, &hourOffset, &apiResp); err != nil {
		return weather.ForecastSample{}, err
	}

	ts, code, err := validateRecord(apiResp.Timestamp, apiResp.Code)
	if err != nil {
		return weather.ForecastSample{}, err
	}

	return weather.ForecastSample{
		Timestamp:      ts,
		Code:           code,
		MinTemperature: apiResp.MinTemp,
		MaxTemperature: apiResp.MaxTemp,
		RainMm:         apiResp.Rain,
	}, nil
}

func (c *weatherBotClient) HistoricalHourly(ctx context.Context, coord weather.Coordinate, hourOffset int) (weather.HistoricalSample, error) {
	var apiResp HistoricalHourlyResponse
	if err := c.getJSON(ctx, "/historical/hourly", coord, &hourOffset, &apiResp); err != nil {
		return weather.HistoricalSample{}, err
	}

	ts, code, err := validateRecord(apiResp.Timestamp, apiResp.Code)
	if err != nil {
		return weather.HistoricalSample{}, err
	}

	return weather.HistoricalSample{
		Timestamp:      ts,
		Code:           code,
		Temperature:    apiResp.Temp,
		RainLastHourMm: apiResp.Rain1h,
	}, nil
}

func (c *weatherBotClient) getJSON(ctx context.Context, path string, coord weather.Coordinate, hourOffset *int, out interface{}) error {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	if hourOffset != nil {
		query.Set("hour_offset", strconv.Itoa(*hourOffset))
	}

	resp, err := c.execute(ctx, c.baseURL+path+"?"+query.Encode())
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.body, out); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("weatherbot returned malformed JSON")
		return &weather.ExternalAPIError{StatusCode: resp.statusCode, Body: string(resp.body)}
	}

	return nil
}

func (c *weatherBotClient) execute(ctx context.Context, endpoint string) (*providerResponse, error) {
	if c.breaker == nil {
		return c.roundTrip(ctx, endpoint)
	}

	done, err := c.breaker.Allow()
	if err != nil {
		return nil, &weather.ExternalAPIError{
			StatusCode: http.StatusServiceUnavailable,
			Body:       "circuit breaker open: " + err.Error(),
		}
	}

	resp, err := c.roundTrip(ctx, endpoint)
	if isContextError(err) {
		// cancelled calls are not reported, except that a half-open trial
		// must settle or the breaker stays half-open
		if c.breaker.State() == gobreaker.StateHalfOpen {
			done(false)
		}
		return nil, err
	}

	done(isProviderHealthy(err))
	return resp, err
}

func (c *weatherBotClient) roundTrip(ctx context.Context, endpoint string) (*providerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("weatherbot request could not be built: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &weather.ExternalAPIError{Body: redactURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &weather.ExternalAPIError{StatusCode: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &weather.ExternalAPIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &providerResponse{statusCode: resp.StatusCode, body: body}, nil
}

func validateRecord(timestamp *int64, rawCode *int) (time.Time, weather.WeatherCode, error) {
	if timestamp == nil {
		return time.Time{}, 0, &weather.ExternalAPIError{StatusCode: http.StatusOK, Body: "record has no timestamp"}
	}
	if rawCode == nil {
		return time.Time{}, 0, &weather.ExternalAPIError{StatusCode: http.StatusOK, Body: "record has no weather code"}
	}

	code := weather.WeatherCode(*rawCode)
	if !code.Valid() {
		return time.Time{}, 0, &weather.ExternalAPIError{
			StatusCode: http.StatusOK,
			Body:       fmt.Sprintf("unknown weather code %d", *rawCode),
		}
	}

	return time.Unix(*timestamp, 0).UTC(), code, nil
}

// redactURL keeps the api key out of error messages; *url.Error embeds the
// full request URL.
func redactURL(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func isProviderHealthy(err error) bool {
	if err == nil {
		return true
	}

	var apiErr *weather.ExternalAPIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode < http.StatusInternalServerError
	}

	return false
}
