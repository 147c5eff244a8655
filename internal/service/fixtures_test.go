package service_test

import (
	"time"

	"ulascansenturk/weather-summary/internal/weather"
)

var baseTime = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

func currentSample(code weather.WeatherCode, temp, rain1h float64) weather.CurrentSample {
	return weather.CurrentSample{
		Timestamp:      baseTime,
		Code:           code,
		Temperature:    temp,
		RainLastHourMm: rain1h,
	}
}

func forecastSample(hourOffset int, code weather.WeatherCode) weather.ForecastSample {
	return weather.ForecastSample{
		Timestamp:      baseTime.Add(time.Duration(hourOffset) * time.Hour),
		Code:           code,
		MinTemperature: 3,
		MaxTemperature: 11,
		RainMm:         0,
	}
}

func historicalSample(hourOffset int, temp float64) weather.HistoricalSample {
	return weather.HistoricalSample{
		Timestamp:   baseTime.Add(time.Duration(hourOffset) * time.Hour),
		Code:        weather.CodeClear,
		Temperature: temp,
	}
}

// forecastWithCodes assigns codes to +6h, +12h, ... in order.
func forecastWithCodes(codes ...weather.WeatherCode) []weather.ForecastSample {
	forecast := make([]weather.ForecastSample, 0, len(codes))
	for i, code := range codes {
		forecast = append(forecast, forecastSample(6*(i+1), code))
	}
	return forecast
}

// historicalWithTemps assigns temps to -24h, -18h, -12h, -6h in order.
func historicalWithTemps(temps ...float64) []weather.HistoricalSample {
	historical := make([]weather.HistoricalSample, 0, len(temps))
	for i, temp := range temps {
		historical = append(historical, historicalSample(-24+6*i, temp))
	}
	return historical
}
