package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env            string
	LogLevel       string
	HTTPTimeout    int32
	SummaryTimeout time.Duration

	WeatherBotBaseURL string
	WeatherBotAPIKey  string

	CircuitBreakerEnabled     bool
	CircuitBreakerMaxFailures uint32
	CircuitBreakerOpenTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-summary")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 5)
	v.SetDefault("SUMMARY_TIMEOUT", 1500*time.Millisecond)
	v.SetDefault("WEATHER_BOT_BASE_URL", "https://thirdparty-weather-api-v2.droom.workers.dev")
	v.SetDefault("CIRCUIT_BREAKER_ENABLED", false)
	v.SetDefault("CIRCUIT_BREAKER_MAX_FAILURES", 5)
	v.SetDefault("CIRCUIT_BREAKER_OPEN_TIMEOUT", 30*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:               v.GetString("SERVICE_NAME"),
		ServerAddress:             v.GetString("SERVER_ADDRESS"),
		DBName:                    v.GetString("DATABASE_NAME"),
		DBPassword:                v.GetString("DATABASE_PASSWORD"),
		DBUser:                    v.GetString("DATABASE_USER"),
		DBPort:                    v.GetString("DATABASE_PORT"),
		DBHost:                    v.GetString("DATABASE_HOST"),
		Env:                       v.GetString("ENV"),
		LogLevel:                  v.GetString("LOG_LEVEL"),
		HTTPTimeout:               v.GetInt32("HTTP_TIMEOUT"),
		SummaryTimeout:            v.GetDuration("SUMMARY_TIMEOUT"),
		WeatherBotBaseURL:         v.GetString("WEATHER_BOT_BASE_URL"),
		WeatherBotAPIKey:          v.GetString("WEATHER_BOT_API_KEY"),
		CircuitBreakerEnabled:     v.GetBool("CIRCUIT_BREAKER_ENABLED"),
		CircuitBreakerMaxFailures: v.GetUint32("CIRCUIT_BREAKER_MAX_FAILURES"),
		CircuitBreakerOpenTimeout: v.GetDuration("CIRCUIT_BREAKER_OPEN_TIMEOUT"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// minDuration rejects unitless duration values: viper reads "1500" as 1500ns.
const minDuration = time.Millisecond

func (c *Config) validate() error {
	if c.WeatherBotAPIKey == "" {
		return fmt.Errorf("WEATHER_BOT_API_KEY is required")
	}
	if c.SummaryTimeout < minDuration {
		return fmt.Errorf("SUMMARY_TIMEOUT must be at least %s and carry a unit such as 1500ms, got %s", minDuration, c.SummaryTimeout)
	}
	if c.CircuitBreakerEnabled && c.CircuitBreakerOpenTimeout < minDuration {
		return fmt.Errorf("CIRCUIT_BREAKER_OPEN_TIMEOUT must be at least %s and carry a unit such as 30s, got %s", minDuration, c.CircuitBreakerOpenTimeout)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// AuditLogEnabled reports whether summary queries should be persisted.
func (c *Config) AuditLogEnabled() bool {
	return c.DBHost != ""
}
