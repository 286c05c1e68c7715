package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicedetector/pkg/logger"
)

// LoggerExtractor returns a context extractor for logger.WithContextExtractors.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
