package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/khaeru/iamc-sdmx-demo/errors"
)

// Config is the complete tool configuration.
type Config struct {
	// SchemaPath is the IAMC schema document to load.
	SchemaPath string     `yaml:"schema_path"`
	HTTP       HTTPConfig `yaml:"http"`
	Log        LogConfig  `yaml:"log"`
}

// HTTPConfig configures the schema registry server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SchemaPath: "iamc.yaml",
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFile reads a YAML configuration file over the defaults and validates
// the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInternal(err, "Config", "LoadFile", "read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapMalformed(err, "Config", "LoadFile", "decode config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	var problems []string

	if c.SchemaPath == "" {
		problems = append(problems, "schema_path must not be empty")
	}
	if c.HTTP.Addr == "" {
		problems = append(problems, "http.addr must not be empty")
	}
	if c.HTTP.ReadTimeout <= 0 {
		problems = append(problems, "http.read_timeout must be positive")
	}
	if c.HTTP.WriteTimeout <= 0 {
		problems = append(problems, "http.write_timeout must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		problems = append(problems, "http.shutdown_timeout must be positive")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of json, text", c.Log.Format))
	}

	if len(problems) > 0 {
		err := fmt.Errorf("%w: %s", errors.ErrInvalidConfig, problems[0])
		for _, p := range problems[1:] {
			err = fmt.Errorf("%w; %s", err, p)
		}
		return errors.WrapInternal(err, "Config", "Validate", "check values")
	}
	return nil
}
