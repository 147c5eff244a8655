package service

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"ulascansenturk/weather-summary/internal/weather"
)

const (
	heavyPrecipitationMm = 100
	hotTemperature       = 30
	freezingTemperature  = 0
	warmRegimeFloor      = 15
	alertCountThreshold  = 2
	next24hEntries       = 4
)

const (
	GreetingHeavySnow = "Heavy snow is falling."
	GreetingLightSnow = "Light snow is drifting down."
	GreetingHeavyRain = "Heavy rain is pouring down."
	GreetingRain      = "It is raining."
	GreetingCloudy    = "The weather is a little gloomy."
	GreetingSunny     = "Enjoy the warm sunshine."
	GreetingCold      = "It is really cold out."
	GreetingClear     = "The sky is clear."

	HeadsUpHeavySnow = "Heavy snow may fall by tomorrow, take care when going out."
	HeadsUpSnow      = "Snow is expected over the next two days, take care when going out."
	HeadsUpHeavyRain = "Heavy rain is on the way, bring an umbrella."
	HeadsUpRain      = "Rain is expected over the next several days."
	HeadsUpCalm      = "The weather should be generally calm."
)

// DecideGreeting evaluates the greeting table top to bottom; the first
// matching row wins.
func DecideGreeting(current weather.CurrentSample) string {
	switch {
	case current.Code == weather.CodeSnowy && current.RainLastHourMm >= heavyPrecipitationMm:
		return GreetingHeavySnow
	case current.Code == weather.CodeSnowy:
		return GreetingLightSnow
	case current.Code == weather.CodeRainy && current.RainLastHourMm >= heavyPrecipitationMm:
		return GreetingHeavyRain
	case current.Code == weather.CodeRainy:
		return GreetingRain
	case current.Code == weather.CodeCloudy:
		return GreetingCloudy
	case current.Code == weather.CodeClear && current.Temperature >= hotTemperature:
		return GreetingSunny
	case current.Temperature <= freezingTemperature:
		return GreetingCold
	default:
		return GreetingClear
	}
}

// DecideTemperatureNote compares the current temperature with the oldest
// historical sample and reports the high and low across all of them.
func DecideTemperatureNote(current weather.CurrentSample, historical []weather.HistoricalSample) (string, error) {
	if len(historical) == 0 {
		return "", fmt.Errorf("no historical sample to compare against: %w", weather.ErrInsufficientData)
	}

	reference := slices.MinFunc(historical, func(a, b weather.HistoricalSample) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	diff := formatDegrees(math.Abs(current.Temperature - reference.Temperature))
	warm := current.Temperature >= warmRegimeFloor

	var comparison string
	switch {
	case warm && current.Temperature < reference.Temperature:
		comparison = fmt.Sprintf("It is %s° less hot than yesterday.", diff)
	case warm && current.Temperature > reference.Temperature:
		comparison = fmt.Sprintf("It is %s° hotter than yesterday.", diff)
	case warm && current.Temperature == reference.Temperature:
		comparison = "It is similarly hot as yesterday."
	case !warm && current.Temperature < reference.Temperature:
		comparison = fmt.Sprintf("It is %s° colder than yesterday.", diff)
	case !warm && current.Temperature > reference.Temperature:
		comparison = fmt.Sprintf("It is %s° less cold than yesterday.", diff)
	case !warm && current.Temperature == reference.Temperature:
		comparison = "It is similarly cold as yesterday."
	default:
		comparison = "The comparison with yesterday is unavailable."
	}

	high, low := current.Temperature, current.Temperature
	for _, sample := range historical {
		high = max(high, sample.Temperature)
		low = min(low, sample.Temperature)
	}

	return fmt.Sprintf("%s The high is %s° and the low is %s°.", comparison, formatDegrees(high), formatDegrees(low)), nil
}

// DecideHeadsUp looks at the forecast in timestamp order; the first four
// entries cover the next 24 hours.
func DecideHeadsUp(forecast []weather.ForecastSample) string {
	next48h := slices.Clone(forecast)
	slices.SortStableFunc(next48h, func(a, b weather.ForecastSample) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	next24h := next48h[:min(next24hEntries, len(next48h))]

	switch {
	case countCode(next24h, weather.CodeSnowy) >= alertCountThreshold:
		return HeadsUpHeavySnow
	case countCode(next48h, weather.CodeSnowy) >= alertCountThreshold:
		return HeadsUpSnow
	case countCode(next24h, weather.CodeRainy) >= alertCountThreshold:
		return HeadsUpHeavyRain
	case countCode(next48h, weather.CodeRainy) >= alertCountThreshold:
		return HeadsUpRain
	default:
		return HeadsUpCalm
	}
}

func countCode(forecast []weather.ForecastSample, code weather.WeatherCode) int {
	count := 0
	for _, sample := range forecast {
		if sample.Code == code {
			count++
		}
	}
	return count
}

// provider temperatures are single precision; formatting at 32 bits keeps
// 10.3-5.1 as "5.2" instead of exposing float64 noise
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
