package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"ulascansenturk/weather-summary/internal/providers"
	"ulascansenturk/weather-summary/internal/weather"
)

var (
	ForecastOffsets   = []int{6, 12, 18, 24, 30, 36, 42, 48}
	HistoricalOffsets = []int{-24, -18, -12, -6}
)

// CallsPerBatch is the number of provider calls one FetchAll issues.
func CallsPerBatch() int {
	return 1 + len(ForecastOffsets) + len(HistoricalOffsets)
}

// Samples holds one full batch. Forecast and Historical are in offset order,
// not necessarily timestamp order.
type Samples struct {
	Current    *weather.CurrentSample
	Forecast   []weather.ForecastSample
	Historical []weather.HistoricalSample
}

type WeatherRequestAggregator interface {
	FetchAll(ctx context.Context, coord weather.Coordinate) (*Samples, error)
}

type weatherAggregator struct {
	weatherBot providers.WeatherBotClient
}

func NewWeatherRequestAggregator(weatherBot providers.WeatherBotClient) WeatherRequestAggregator {
	return &weatherAggregator{
		weatherBot: weatherBot,
	}
}

// FetchAll issues the current, forecast and historical calls concurrently and
// waits for all of them. The first failure cancels the rest of the batch and
// is returned as is. If ctx is done first, FetchAll returns immediately with
// an error wrapping weather.ErrTimedOut.
func (w *weatherAggregator) FetchAll(ctx context.Context, coord weather.Coordinate) (*Samples, error) {
	if err := ctx.Err(); err != nil {
		return nil, timedOut(err)
	}

	startedAt := time.Now()

	var current weather.CurrentSample
	forecast := make([]weather.ForecastSample, len(ForecastOffsets))
	historical := make([]weather.HistoricalSample, len(HistoricalOffsets))

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		sample, err := w.weatherBot.Current(groupCtx, coord)
		if err != nil {
			return fmt.Errorf("fetch current: %w", err)
		}
		current = sample
		return nil
	})

	for i, offset := range ForecastOffsets {
		i, offset := i, offset
		group.Go(func() error {
			sample, err := w.weatherBot.ForecastHourly(groupCtx, coord, offset)
			if err != nil {
				return fmt.Errorf("fetch forecast %+dh: %w", offset, err)
			}
			forecast[i] = sample
			return nil
		})
	}

	for i, offset := range HistoricalOffsets {
		i, offset := i, offset
		group.Go(func() error {
			sample, err := w.weatherBot.HistoricalHourly(groupCtx, coord, offset)
			if err != nil {
				return fmt.Errorf("fetch historical %+dh: %w", offset, err)
			}
			historical[i] = sample
			return nil
		})
	}

	// buffered so the waiter never blocks once nobody is listening
	done := make(chan error, 1)
	go func() {
		done <- group.Wait()
	}()

	select {
	case <-ctx.Done():
		log.Debug().Dur("elapsed", time.Since(startedAt)).Msg("weather batch abandoned")
		return nil, timedOut(ctx.Err())
	case err := <-done:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, timedOut(ctxErr)
		}
		if err != nil {
			log.Debug().Err(err).Dur("elapsed", time.Since(startedAt)).Msg("weather batch failed")
			return nil, err
		}
	}

	log.Debug().
		Dur("elapsed", time.Since(startedAt)).
		Int("calls", CallsPerBatch()).
		Msg("weather batch fetched")

	return &Samples{
		Current:    &current,
		Forecast:   forecast,
		Historical: historical,
	}, nil
}

func timedOut(cause error) error {
	return fmt.Errorf("%w: %w", weather.ErrTimedOut, cause)
}
