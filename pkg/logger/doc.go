// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors and injection of values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs every registered
// ContextExtractor before delegating a record.
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvDevelopment, "detector"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	log.WarnContext(ctx, "cache rejected",
//	    logger.Component("factory"),
//	    logger.CacheKey("cache.redis"),
//	    logger.Error(err),
//	)
//
// Environment-driven setup goes through Config:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	opts, err := logger.FromConfig(cfg)
//
// Error and Errors return an empty Attr for nil errors, which slog drops, so
// callers can pass err without a nil check. Libraries that take an optional
// logger default to Discard.
package logger
