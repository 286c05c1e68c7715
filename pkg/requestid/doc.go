// Package requestid correlates the log records of one detector build.
//
// Ensure picks the id for a build: one already stored in the context, a valid
// X-Request-ID header from the request, or a freshly generated UUIDv4. Client
// ids longer than 128 bytes or containing characters outside [a-zA-Z0-9_-]
// are replaced.
//
//	ctx, id := requestid.Ensure(ctx, headers.FromHTTP(r.Header))
//
// LoggerExtractor plugs the stored id into a logger built with pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
