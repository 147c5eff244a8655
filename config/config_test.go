package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-summary/config"
)

type ConfigTestSuite struct {
	suite.Suite
	workDir string
}

func (s *ConfigTestSuite) SetupTest() {
	var err error
	s.workDir, err = os.Getwd()
	s.Require().NoError(err)

	// keep a developer's local .env out of the picture
	s.Require().NoError(os.Chdir(s.T().TempDir()))
	s.T().Setenv("WEATHER_BOT_API_KEY", "test-key")
}

func (s *ConfigTestSuite) TearDownTest() {
	s.Require().NoError(os.Chdir(s.workDir))
}

func (s *ConfigTestSuite) TestLoadConfigDefaults() {
	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal("weather-summary", conf.ServiceName)
	s.Equal("0.0.0.0:3000", conf.ServerAddress)
	s.Equal("5432", conf.DBPort)
	s.Equal(1500*time.Millisecond, conf.SummaryTimeout)
	s.Equal(5*time.Second, conf.HTTPTimeoutDuration())
	s.Equal("https://thirdparty-weather-api-v2.droom.workers.dev", conf.WeatherBotBaseURL)
	s.Equal("test-key", conf.WeatherBotAPIKey)
	s.False(conf.CircuitBreakerEnabled)
	s.Equal(uint32(5), conf.CircuitBreakerMaxFailures)
	s.Equal(30*time.Second, conf.CircuitBreakerOpenTimeout)
	s.False(conf.AuditLogEnabled())
}

func (s *ConfigTestSuite) TestLoadConfigFromEnvironment() {
	s.T().Setenv("SUMMARY_TIMEOUT", "2s")
	s.T().Setenv("WEATHER_BOT_BASE_URL", "http://localhost:9999")
	s.T().Setenv("CIRCUIT_BREAKER_ENABLED", "true")
	s.T().Setenv("CIRCUIT_BREAKER_MAX_FAILURES", "3")
	s.T().Setenv("DATABASE_HOST", "db")

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal(2*time.Second, conf.SummaryTimeout)
	s.Equal("http://localhost:9999", conf.WeatherBotBaseURL)
	s.True(conf.CircuitBreakerEnabled)
	s.Equal(uint32(3), conf.CircuitBreakerMaxFailures)
	s.True(conf.AuditLogEnabled())
}

func (s *ConfigTestSuite) TestLoadConfigRequiresAPIKey() {
	s.T().Setenv("WEATHER_BOT_API_KEY", "")

	_, err := config.LoadConfig()

	s.ErrorContains(err, "WEATHER_BOT_API_KEY")
}

func (s *ConfigTestSuite) TestLoadConfigRejectsNonPositiveSummaryTimeout() {
	s.T().Setenv("SUMMARY_TIMEOUT", "0s")

	_, err := config.LoadConfig()

	s.ErrorContains(err, "SUMMARY_TIMEOUT")
}

func (s *ConfigTestSuite) TestLoadConfigRejectsUnitlessSummaryTimeout() {
	s.T().Setenv("SUMMARY_TIMEOUT", "1500")

	_, err := config.LoadConfig()

	s.ErrorContains(err, "SUMMARY_TIMEOUT must be at least 1ms")
}

func (s *ConfigTestSuite) TestLoadConfigRejectsUnitlessBreakerOpenTimeout() {
	s.T().Setenv("CIRCUIT_BREAKER_ENABLED", "true")
	s.T().Setenv("CIRCUIT_BREAKER_OPEN_TIMEOUT", "30")

	_, err := config.LoadConfig()

	s.ErrorContains(err, "CIRCUIT_BREAKER_OPEN_TIMEOUT")
}

func (s *ConfigTestSuite) TestLoadConfigAcceptsDurationsWithUnits() {
	s.T().Setenv("SUMMARY_TIMEOUT", "1500ms")
	s.T().Setenv("CIRCUIT_BREAKER_ENABLED", "true")
	s.T().Setenv("CIRCUIT_BREAKER_OPEN_TIMEOUT", "30s")

	conf, err := config.LoadConfig()

	s.Require().NoError(err)
	s.Equal(1500*time.Millisecond, conf.SummaryTimeout)
	s.Equal(30*time.Second, conf.CircuitBreakerOpenTimeout)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
