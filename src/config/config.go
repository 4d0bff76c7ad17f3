package config

import (
	"fmt"
	"os"
	"strconv"

	"market-streamer/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from a YAML file. A .env file in
// the working directory, when present, overlays connection secrets on top of
// the YAML values.
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Overlay environment secrets (.env is optional)
	godotenv.Load()
	config.applyEnvOverrides()

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyEnvOverrides replaces secret-bearing settings with environment values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STREAMER_DB_CONNECTION_STRING"); v != "" {
		c.Storage.DBConnectionString = v
	}
	if v := os.Getenv("STREAMER_REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
	}
	if v := os.Getenv("STREAMER_REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("STREAMER_NATS_URL"); v != "" {
		c.Publisher.URL = v
	}
	if v := os.Getenv("STREAMER_SOURCE_API_KEY"); v != "" {
		c.Source.APIKey = v
	}
	if v := os.Getenv("STREAMER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Storage configuration
	if c.Storage.Enabled {
		if c.Storage.DBType == "" {
			return fmt.Errorf("database type cannot be empty")
		}
		if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
		if c.Storage.DBType == "postgres" && c.Storage.DBConnectionString == "" {
			return fmt.Errorf("connection string cannot be empty for postgres")
		}
		if c.Storage.DataRetentionDays <= 0 {
			return fmt.Errorf("data retention days must be greater than 0")
		}
	}

	// Validate Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}

	// Validate DataSource configuration
	if c.Source.Endpoint == "" {
		return fmt.Errorf("data source endpoint cannot be empty")
	}
	if c.Source.ResampleBars <= 0 {
		return fmt.Errorf("resample bars must be greater than 0")
	}

	// Validate Streaming configuration
	if c.Streaming.DefaultRefreshSeconds <= 0 {
		return fmt.Errorf("default refresh period must be greater than 0")
	}
	if c.Streaming.FailureBackoffSeconds <= 0 {
		return fmt.Errorf("failure backoff must be greater than 0")
	}

	// Validate Cache configuration
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("redis address cannot be empty when cache is enabled")
	}

	// Validate Publisher configuration
	if c.Publisher.Enabled && c.Publisher.URL == "" {
		return fmt.Errorf("nats url cannot be empty when publisher is enabled")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
