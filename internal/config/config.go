package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	Port string `validate:"required,numeric"`

	LogLevel string `validate:"required,oneof=debug info warn error dpanic panic fatal"`
	Env      string `validate:"required,oneof=development production test"`

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LoadConfig reads the environment, after loading an optional .env file
// from the working directory. Variables already set in the environment
// win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(GetEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:            GetEnv("PORT", "8081"),
		Env:             GetEnv("ENV", "development"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdownTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
