// Package config loads the notifier process settings from environment
// variables.
//
// It wraps `github.com/joho/godotenv` (optional `.env` file) and
// `github.com/caarlos0/env/v11` (struct tags):
//
//	APP_ENV       development | staging | production (default production)
//	SERVICE_NAME  service attribute on log lines (default notifier)
//	LOG_LEVEL     DEBUG | INFO | WARN | ERROR (default WARN)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment(), cfg.ServiceName),
//	    logger.WithLevel(cfg.LogLevel),
//	)
//
// # Error Handling
//
// Failures are joined with a sentinel that can be matched with errors.Is:
//
//   - ErrParsingConfig  – an environment value could not be parsed.
//   - ErrLoadingEnvFile – a file passed to LoadFiles could not be read.
package config
