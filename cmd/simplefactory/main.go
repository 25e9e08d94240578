package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifier/pkg/config"
	"github.com/dmitrymomot/notifier/pkg/demo"
	"github.com/dmitrymomot/notifier/pkg/logger"
	"github.com/dmitrymomot/notifier/pkg/notifications"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplefactory: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Environment(), cfg.ServiceName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithAttr(logger.Component("simplefactory")),
		logger.WithContextExtractors(demo.LogExtractor),
	)
	logger.SetAsDefault(log)

	// An unknown tag here is a programming error and panics, uncaught.
	script, err := demo.SimpleFactoryScript()
	if err != nil {
		panic(err)
	}

	ctx := demo.WithRunID(context.Background(), uuid.NewString())
	svc := notifications.NewService(notifications.WithLogger(log))

	return demo.Run(ctx, os.Stdout, svc, script)
}
