package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	JWT       JWTConfig       `mapstructure:"jwt" validate:"required"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Logger    LoggerConfig    `mapstructure:"logger" validate:"required"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Insights  InsightsConfig  `mapstructure:"insights"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            int           `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	User            string `mapstructure:"user" validate:"required"`
	Password        string `mapstructure:"password" validate:"required"`
	DBName          string `mapstructure:"dbname" validate:"required"`
	SSLMode         string `mapstructure:"sslmode" validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// JWTConfig holds configuration for app-issued tokens
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpireHour int    `mapstructure:"expire_hour" validate:"gte=1"`
}

// SupabaseConfig holds settings for the Supabase token-exchange login path.
// AnonKey is the project's anon/public key used to verify access tokens.
// Empty AnonKey disables the exchange route.
type SupabaseConfig struct {
	AnonKey string `mapstructure:"anon_key"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required"`
	Format     string `mapstructure:"format" validate:"required,oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// InventoryConfig holds inventory defaults
type InventoryConfig struct {
	DefaultMinimumStock int `mapstructure:"default_minimum_stock" validate:"gte=0"`
}

// InsightsConfig holds sales-insight tuning
type InsightsConfig struct {
	MarginThreshold float64 `mapstructure:"margin_threshold" validate:"gte=0,lte=100"`
}

// NewConfig creates and returns a new Config instance
// It loads configuration from file, environment variables, and defaults
func NewConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("../../config") // when running from cmd/lucrofacil

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional: defaults and env vars cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")

	var config Config
	if err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "lucrofacil")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)

	// The empty jwt.secret default only registers the key so that
	// APP_JWT_SECRET is picked up; validateConfig rejects it when it
	// stays empty.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hour", 24)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output_path", "stdout")

	// Domain defaults
	v.SetDefault("inventory.default_minimum_stock", 5)
	v.SetDefault("insights.margin_threshold", 15.0)
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "your-secret-key-change-this" {
		return fmt.Errorf("JWT secret is not set: export APP_JWT_SECRET or set jwt.secret in config.yaml")
	}

	return validator.New().Struct(cfg)
}
