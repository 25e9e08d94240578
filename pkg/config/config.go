package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/notifier/pkg/environment"
)

// Config holds the process-level settings of the notifier binaries.
// Every field has a default, so an empty environment is valid.
type Config struct {
	AppEnv      string     `env:"APP_ENV" envDefault:"production"`
	ServiceName string     `env:"SERVICE_NAME" envDefault:"notifier"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"WARN"`
}

// Environment returns the parsed AppEnv.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.AppEnv)
}

var defaultEnvLoaded sync.Once

// Load reads a .env file from the working directory (if present) once per
// process, then parses the environment into Config.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadFiles is like Load but reads the given .env files instead of the
// default one. Values already present in the environment win.
func LoadFiles(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
