package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME" default:"zeit"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE" default:"true"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
			MaxClients    int  `envconfig:"MAX_CLIENTS" default:"8192"`
		} `envconfig:"RATE_LIMITER"`
		Cache struct {
			FreshnessMillis int `envconfig:"FRESHNESS_MS" default:"1000"`
			MaxEntries      int `envconfig:"MAX_ENTRIES" default:"4096"`
		} `envconfig:"CACHE"`
		// StrictZoneFormat enables the Region/City structural pre-check on
		// the timezone parameter. The pattern rejects single-segment
		// identifiers such as "UTC" even though the zone database knows
		// them, so it stays off unless a deployment wants the narrower
		// contract.
		StrictZoneFormat bool `envconfig:"STRICT_ZONE_FORMAT" default:"false"`
	} `envconfig:"APP"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
