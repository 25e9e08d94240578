// Package logger builds *slog.Logger instances through functional options
// and provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and, when extractors are registered, wraps it so that every
// ContextExtractor runs on each record. Logs go to stderr unless
// WithOutput says otherwise.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "notifier"),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithContextExtractors(demo.LogExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "notification delivered",
//	    logger.Channel("Email"),
//	    logger.Recipient("admin@exemplo.com"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
