package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // REPORT_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer       = "finsight"
	defaultRateLimit       = "100-M"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string
	LogLevel        string
	FrontendBaseURL string
	ShutdownTimeout time.Duration

	// Reporting
	ReportTimezone string
	ReportLocation *time.Location // periods are resolved and bucketed in this zone

	// Rate limiting, in limiter's "<limit>-<S|M|H|D>" format. Redis backs the
	// limiter store when RedisAddress is set.
	RateLimit    string
	RedisAddress string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REPORT_TIMEZONE", "UTC")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		LogLevel:        strings.ToLower(viper.GetString("LOG_LEVEL")),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		ReportTimezone:  viper.GetString("REPORT_TIMEZONE"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		RedisAddress:    viper.GetString("REDIS_ADDRESS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdownTimeout = defaultShutdownTimeout
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout.String())
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if cfg.ReportTimezone == "" {
		cfg.ReportTimezone = "UTC"
	}
	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE '%s': %w", cfg.ReportTimezone, err)
	}
	cfg.ReportLocation = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel)
	}

	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout)
	}

	return nil
}
