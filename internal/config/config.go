package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Precedence order:
// 1. Config File values
// 2. Environment Variables (INTERVIEWSIM_SERVER_PORT, etc.)
// 3. Default values
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Interview     InterviewConfig     `mapstructure:"interview"`
	Server        ServerConfig        `mapstructure:"server"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// InterviewConfig holds interview pipeline configuration
type InterviewConfig struct {
	QuestionCount  int         `mapstructure:"questionCount"`  // Questions per session
	FollowUpChance float64     `mapstructure:"followUpChance"` // Probability of a follow-up after an answer (0.0-1.0)
	Banks          BanksConfig `mapstructure:"banks"`          // Question bank sources
}

// BanksConfig holds question bank file configuration
type BanksConfig struct {
	File       string           `mapstructure:"file"`       // YAML question bank file; empty uses the built-in pools
	AutoReload AutoReloadConfig `mapstructure:"autoReload"` // Hot reload for serve mode
}

// AutoReloadConfig holds configuration for automatic question bank reloading
type AutoReloadConfig struct {
	Enabled       bool          `mapstructure:"enabled"`       // Enable file watching
	DebounceDelay time.Duration `mapstructure:"debounceDelay"` // Debounce delay for file change events
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"` // Valid API keys for authentication

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`        // Enable/disable rate limiting
	RequestsPerMin int           `mapstructure:"requestsPerMin"` // Requests allowed per minute
	BurstCapacity  int           `mapstructure:"burstCapacity"`  // Burst capacity for token bucket
	ByIP           bool          `mapstructure:"byIP"`           // Enable per-IP rate limiting
	ByAPIKey       bool          `mapstructure:"byAPIKey"`       // Enable per-API-key rate limiting
	Window         time.Duration `mapstructure:"window"`         // Rate limiting window duration
}

// ObservabilityConfig holds observability configuration
type ObservabilityConfig struct {
	Enabled         bool             `mapstructure:"enabled"`
	ServiceName     string           `mapstructure:"serviceName"`
	ServiceVersion  string           `mapstructure:"serviceVersion"`
	ServiceInstance string           `mapstructure:"serviceInstance"`
	ConsoleOutput   bool             `mapstructure:"consoleOutput"`
	SampleRate      float64          `mapstructure:"sampleRate"`
	Tracing         TracingConfig    `mapstructure:"tracing"`
	Metrics         MetricsConfig    `mapstructure:"metrics"`
	Console         ConsoleConfig    `mapstructure:"console"`
	Prometheus      PrometheusConfig `mapstructure:"prometheus"`
	OTLP            OTLPConfig       `mapstructure:"otlp"`
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate float64 `mapstructure:"sampleRate"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}

// ConsoleConfig holds console output configuration
type ConsoleConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"prettyPrint"`
}

// PrometheusConfig holds Prometheus configuration
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Port     string `mapstructure:"port"`
}

// OTLPConfig holds OTLP exporter configuration
type OTLPConfig struct {
	Enabled  bool              `mapstructure:"enabled"`
	Endpoint string            `mapstructure:"endpoint"`
	Insecure bool              `mapstructure:"insecure"`
	Headers  map[string]string `mapstructure:"headers"`
}

// LoadConfig loads configuration from environment variables and a config file
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("INTERVIEWSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/interviewsim/")
	v.AddConfigPath("$HOME/.interviewsim")
	v.AddConfigPath(".")

	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileUsed = v.ConfigFileUsed()
		log.Printf("[CONFIG] Loaded config file: %s", configFileUsed)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyFallbacks()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Interview.QuestionCount <= 0 {
		return fmt.Errorf("interview question count must be positive")
	}

	if c.Interview.FollowUpChance < 0 || c.Interview.FollowUpChance > 1 {
		return fmt.Errorf("interview follow-up chance must be between 0 and 1")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	validFormats := make(map[string]bool)
	for _, format := range c.App.SupportedFormats {
		validFormats[format] = true
	}
	if !validFormats[c.App.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s", c.App.DefaultFormat)
	}

	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RequestsPerMin <= 0 {
			return fmt.Errorf("rate limit requests per minute must be positive")
		}
		if c.Server.RateLimit.BurstCapacity <= 0 {
			return fmt.Errorf("rate limit burst capacity must be positive")
		}
	}

	return nil
}
