// Package config provides configuration management for the application.
// It handles loading, validation, and access to configuration values
// from a YAML file and environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/goimpressum/internal/fetcher"
	"github.com/jonesrussell/goimpressum/internal/logger"
)

// Pipeline defaults.
const (
	defaultMaxWorkers = 5
	defaultOutputPath = "results.json"
	defaultModelPath  = "model.json"
)

// Server defaults.
const (
	defaultServerAddress      = ":8080"
	defaultServerReadTimeout  = 30 * time.Second
	defaultServerWriteTimeout = 30 * time.Second
)

// PipelineConfig holds orchestration configuration.
type PipelineConfig struct {
	// URLs is the input list of absolute site URLs.
	URLs []string `yaml:"urls" mapstructure:"urls"`
	// MaxWorkers bounds concurrent extraction tasks.
	MaxWorkers int `yaml:"max_workers" mapstructure:"max_workers"`
	// OutputPath is where the ranked JSON result array is written.
	OutputPath string `yaml:"output_path" mapstructure:"output_path"`
}

// ModelConfig holds recognition-model configuration.
type ModelConfig struct {
	// ArtifactPath is the trained model artifact location.
	ArtifactPath string `yaml:"artifact_path" mapstructure:"artifact_path"`
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	Address      string        `yaml:"address" mapstructure:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// Config represents the application configuration.
type Config struct {
	// Fetcher holds HTTP fetch configuration.
	Fetcher fetcher.Config `yaml:"fetcher" mapstructure:"fetcher"`
	// Pipeline holds orchestration configuration.
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	// Model holds recognition-model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`
	// Server holds API server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	// Logging holds logger configuration.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.MaxWorkers <= 0 {
		return errors.New("pipeline.max_workers must be positive")
	}
	if c.Pipeline.OutputPath == "" {
		return errors.New("pipeline.output_path is required")
	}
	if c.Model.ArtifactPath == "" {
		return errors.New("model.artifact_path is required")
	}
	return nil
}

// Load loads configuration from the optional file at path, environment
// variables, and defaults, in ascending precedence of env over file
// over defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; defaults and env vars suffice.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && path != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Fetcher = cfg.Fetcher.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values for all configuration keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.max_workers", defaultMaxWorkers)
	v.SetDefault("pipeline.output_path", defaultOutputPath)
	v.SetDefault("model.artifact_path", defaultModelPath)
	v.SetDefault("server.address", defaultServerAddress)
	v.SetDefault("server.read_timeout", defaultServerReadTimeout)
	v.SetDefault("server.write_timeout", defaultServerWriteTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "console")
}
