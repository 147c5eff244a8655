package weather

import (
	"fmt"
	"time"
)

// WeatherCode is the provider's condition classification.
type WeatherCode int

const (
	CodeClear  WeatherCode = 0
	CodeCloudy WeatherCode = 1
	CodeRainy  WeatherCode = 2
	CodeSnowy  WeatherCode = 3
)

func (c WeatherCode) Valid() bool {
	return c >= CodeClear && c <= CodeSnowy
}

func (c WeatherCode) String() string {
	switch c {
	case CodeClear:
		return "clear"
	case CodeCloudy:
		return "cloudy"
	case CodeRainy:
		return "rainy"
	case CodeSnowy:
		return "snowy"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type CurrentSample struct {
	Timestamp      time.Time
	Code           WeatherCode
	Temperature    float64
	RainLastHourMm float64
}

type ForecastSample struct {
	Timestamp      time.Time
	Code           WeatherCode
	MinTemperature float64
	MaxTemperature float64
	RainMm         float64
}

type HistoricalSample struct {
	Timestamp      time.Time
	Code           WeatherCode
	Temperature    float64
	RainLastHourMm float64
}

// Summary is the three-sentence view returned to callers.
type Summary struct {
	Greeting    string `json:"greeting"`
	Temperature string `json:"temperature"`
	HeadsUp     string `json:"headsUp"`
}
