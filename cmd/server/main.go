package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-summary/config"
	"ulascansenturk/weather-summary/internal/api/v1/handlers"
	"ulascansenturk/weather-summary/internal/db/summaryquery"
	"ulascansenturk/weather-summary/internal/providers"
	"ulascansenturk/weather-summary/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var summaryQueryRepo summaryquery.Repository
	if conf.AuditLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		summaryQueryRepo = summaryquery.NewRepository(db)
	} else {
		log.Info().Msg("DATABASE_HOST not set, summary query audit log disabled")
	}

	var clientOpts []providers.Option
	if conf.CircuitBreakerEnabled {
		clientOpts = append(clientOpts, providers.WithCircuitBreaker(
			providers.CircuitBreakerSettings(
				conf.CircuitBreakerMaxFailures,
				uint32(service.CallsPerBatch()),
				conf.CircuitBreakerOpenTimeout,
			),
		))
	}
	weatherBot := providers.NewWeatherBotClient(conf.WeatherBotBaseURL, conf.WeatherBotAPIKey, clientOpts...)

	aggregator := service.NewWeatherRequestAggregator(weatherBot)
	weatherService := service.NewWeatherService(aggregator, summaryQueryRepo)

	handler := handlers.NewWeatherHandler(weatherService, conf.SummaryTimeout)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&summaryquery.SummaryQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
