package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the assistant's runtime settings
type Config struct {
	HTTPAddress       string  `mapstructure:"HTTP_ADDRESS"`
	LogLevel          string  `mapstructure:"LOG_LEVEL"`
	TelegramBotToken  string  `mapstructure:"TELEGRAM_BOT_TOKEN"`
	JWTSecret         string  `mapstructure:"JWT_SECRET"`
	RateLimitRPS      float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int     `mapstructure:"RATE_LIMIT_BURST"`
	MaxRequestBytes   int64   `mapstructure:"MAX_REQUEST_BYTES"`
	CatalogPath       string  `mapstructure:"CATALOG_PATH"`
	NameCount         int     `mapstructure:"NAME_COUNT"`
	CORSAllowedOrigin string  `mapstructure:"CORS_ALLOWED_ORIGIN"`
}

var configKeys = []string{
	"HTTP_ADDRESS",
	"LOG_LEVEL",
	"TELEGRAM_BOT_TOKEN",
	"JWT_SECRET",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"MAX_REQUEST_BYTES",
	"CATALOG_PATH",
	"NAME_COUNT",
	"CORS_ALLOWED_ORIGIN",
}

// LoadConfig loads configuration from .env, an optional bizbot.yaml and the environment.
// Environment variables win over the config file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment only")
	}

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s", key)
		}
	}

	v.SetConfigName("bizbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDRESS", ":5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("MAX_REQUEST_BYTES", 1<<20)
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("NAME_COUNT", 5)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
}

func validateConfig(config *Config) error {
	var invalid []string

	if config.HTTPAddress == "" {
		invalid = append(invalid, "HTTP_ADDRESS")
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}
	if config.RateLimitRPS <= 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	if config.RateLimitBurst < 1 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}
	if config.MaxRequestBytes < 1 {
		invalid = append(invalid, "MAX_REQUEST_BYTES")
	}
	if config.NameCount < 1 {
		invalid = append(invalid, "NAME_COUNT")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration values: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// applyLogLevel sets the global zerolog level; debug forces debug output
func applyLogLevel(level string, debug bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
