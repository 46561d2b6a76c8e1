package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Backend selects where demo state is persisted: file, redis, memory.
		Backend string `yaml:"backend" env:"STORAGE_BACKEND"`
		Dir     string `yaml:"dir" env:"STORAGE_DIR"`

		RedisAddr     string `yaml:"redis_addr" env:"STORAGE_REDIS_ADDR"`
		RedisPassword string `yaml:"redis_password" env:"STORAGE_REDIS_PASSWORD"`
		RedisDB       int    `yaml:"redis_db" env:"STORAGE_REDIS_DB"`
	} `yaml:"storage"`

	Demo struct {
		// BootstrapURL points at a remote snapshot endpoint. Empty means the
		// built-in seed dataset is used.
		BootstrapURL      string  `yaml:"bootstrap_url" env:"DEMO_BOOTSTRAP_URL"`
		AcceptProbability float64 `yaml:"accept_probability" env:"DEMO_ACCEPT_PROBABILITY"`

		ApprovalDelay      string `yaml:"approval_delay" env:"DEMO_APPROVAL_DELAY"`
		MentorResolveDelay string `yaml:"mentor_resolve_delay" env:"DEMO_MENTOR_RESOLVE_DELAY"`
	} `yaml:"demo"`

	Messaging struct {
		// NATSURL enables the change-event publisher when set.
		NATSURL string `yaml:"nats_url" env:"MESSAGING_NATS_URL"`
	} `yaml:"messaging"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Pull a local .env into the process environment if present.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Backend = "file"
	config.Storage.Dir = "data"
	config.Storage.RedisAddr = "localhost:6379"

	config.Demo.AcceptProbability = 0.8
	config.Demo.ApprovalDelay = "2s"
	config.Demo.MentorResolveDelay = "1500ms"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Storage.Backend) {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	if config.Storage.Backend == "file" && config.Storage.Dir == "" {
		return fmt.Errorf("storage dir is required for the file backend")
	}

	if config.Demo.AcceptProbability < 0 || config.Demo.AcceptProbability > 1 {
		return fmt.Errorf("accept probability must be within [0,1]")
	}

	if _, err := time.ParseDuration(config.Demo.ApprovalDelay); err != nil {
		return fmt.Errorf("invalid approval delay format: %w", err)
	}

	if _, err := time.ParseDuration(config.Demo.MentorResolveDelay); err != nil {
		return fmt.Errorf("invalid mentor resolve delay format: %w", err)
	}

	return nil
}
