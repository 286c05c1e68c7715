package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/detector"
	"github.com/dmitrymomot/devicedetector/pkg/headers"
	"github.com/dmitrymomot/devicedetector/pkg/logger"
	"github.com/dmitrymomot/devicedetector/pkg/requestid"
)

// Default locator keys.
const (
	DefaultRequestKey = "request"
	DefaultConfigKey  = "config"
)

// Settings are the resolved detector settings of one build.
type Settings struct {
	// Cache is nil when no cache is used.
	Cache                 cache.Handle
	CacheKind             cache.Kind
	DiscardBotInformation bool
	SkipBotDetection      bool
}

// Factory builds configured detectors. It holds no per-request state and is
// safe for concurrent use when its Locator is.
type Factory struct {
	locator    Locator
	log        *slog.Logger
	requestKey string
	configKey  string
	section    string
	recorder   Recorder
}

// Recorder observes builds. *metrics.Collector implements it. When the
// Recorder also implements detector.CacheRecorder, built detectors report
// their parse cache lookups to it.
type Recorder interface {
	BuildDone(kind cache.Kind, err error)
	CacheDegraded()
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMetrics sets the build Recorder. Nil disables it.
func WithMetrics(r Recorder) Option {
	return func(f *Factory) { f.recorder = r }
}

// WithRequestKey sets the locator key of the current request.
func WithRequestKey(key string) Option {
	return func(f *Factory) {
		if key != "" {
			f.requestKey = key
		}
	}
}

// WithConfigKey sets the locator key of the configuration.
func WithConfigKey(key string) Option {
	return func(f *Factory) {
		if key != "" {
			f.configKey = key
		}
	}
}

// WithSection sets the section name read from raw configuration mappings.
func WithSection(name string) Option {
	return func(f *Factory) {
		if name != "" {
			f.section = name
		}
	}
}

// New creates a Factory. locator may be nil when every build goes through
// BuildFrom without cache keys.
func New(locator Locator, opts ...Option) *Factory {
	f := &Factory{
		locator:    locator,
		log:        logger.Discard(),
		requestKey: DefaultRequestKey,
		configKey:  DefaultConfigKey,
		section:    DefaultSection,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("device-detector-factory"))
	return f
}

// Build looks the request and the configuration up through the Locator and
// builds a detector from them. A missing configuration entry is treated as an
// empty configuration when the Locator can report it (a Has method).
func (f *Factory) Build(ctx context.Context) (*detector.Detector, error) {
	if f.locator == nil {
		return nil, errors.Join(ErrServiceNotCreated, ErrNoLocator)
	}

	req, err := f.locator.Resolve(f.requestKey)
	if err != nil {
		return nil, errors.Join(ErrServiceNotCreated, fmt.Errorf("request %q: %w", f.requestKey, err))
	}

	src, err := f.lookupConfig()
	if err != nil {
		return nil, err
	}

	return f.BuildFrom(ctx, req, src)
}

func (f *Factory) lookupConfig() (ConfigSource, error) {
	if h, ok := f.locator.(interface{ Has(string) bool }); ok && !h.Has(f.configKey) {
		return ConfigSource{}, nil
	}

	v, err := f.locator.Resolve(f.configKey)
	if err != nil {
		return ConfigSource{}, errors.Join(ErrServiceNotCreated, fmt.Errorf("config %q: %w", f.configKey, err))
	}
	return ConfigFromValue(v)
}

// BuildFrom builds a detector for req using src.
//
// req may be a headers.Source, an *http.Request, a headers.Collection or an
// http.Header. The detector receives, in order, the user agent (when present),
// the client hints, the cache (when one resolves) and both bot flags.
//
// A missing or unsupported request fails with ErrInvalidRequest, a request
// without headers with ErrMissingHeaders, and a failed cache lookup with
// ErrServiceNotCreated. No detector is returned on error.
//
// Log records of the build carry a request id chosen by requestid.Ensure.
func (f *Factory) BuildFrom(ctx context.Context, req any, src ConfigSource) (*detector.Detector, error) {
	d, err := f.buildFrom(ctx, req, src)
	if f.recorder != nil {
		kind := cache.KindNone
		if d != nil {
			kind = d.CacheKind()
		}
		f.recorder.BuildDone(kind, err)
	}
	return d, err
}

func (f *Factory) buildFrom(ctx context.Context, req any, src ConfigSource) (*detector.Detector, error) {
	coll, err := collectionOf(req)
	if err != nil {
		return nil, err
	}

	ctx, _ = requestid.Ensure(ctx, coll)
	ua, raw := headers.Extract(coll)

	settings, err := f.Resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	d := detector.New()
	if ua != "" {
		d.SetUserAgent(ua)
	}
	d.SetClientHints(clienthints.FromHeaders(raw))
	if settings.Cache != nil {
		d.SetCache(settings.Cache)
	}
	d.DiscardBotInformation(settings.DiscardBotInformation)
	d.SkipBotDetection(settings.SkipBotDetection)
	if r, ok := f.recorder.(detector.CacheRecorder); ok {
		d.SetCacheRecorder(r)
	}

	f.logFor(ctx).DebugContext(ctx, "detector built",
		logger.CacheKind(d.CacheKind()),
		slog.Bool("user_agent_present", ua != ""),
		slog.Bool("discard_bot_information", settings.DiscardBotInformation),
		slog.Bool("skip_bot_detection", settings.SkipBotDetection),
	)

	return d, nil
}

// Resolve turns a configuration source into Settings. Only a failed cache
// lookup is an error.
func (f *Factory) Resolve(ctx context.Context, src ConfigSource) (Settings, error) {
	raw := src.settings(f.section)
	log := f.logFor(ctx)

	res, err := ResolveCache(DescriptorOf(raw.cache), f.locator)
	if err != nil {
		log.ErrorContext(ctx, "cache lookup failed",
			logger.CacheKey(res.Descriptor.Key()),
			logger.Error(err),
		)
		return Settings{}, err
	}
	if res.Degraded != nil {
		if f.recorder != nil {
			f.recorder.CacheDegraded()
		}
		log.WarnContext(ctx, "cache ignored, continuing without cache",
			logger.CacheKey(res.Descriptor.Key()),
			logger.Error(res.Degraded),
		)
	}

	return Settings{
		Cache:                 res.Handle,
		CacheKind:             res.Kind,
		DiscardBotInformation: raw.discard,
		SkipBotDetection:      raw.skip,
	}, nil
}

func (f *Factory) logFor(ctx context.Context) *slog.Logger {
	if id := requestid.FromContext(ctx); id != "" {
		return f.log.With(logger.RequestID(id))
	}
	return f.log
}

func collectionOf(req any) (headers.Collection, error) {
	if isNilValue(req) {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	var coll headers.Collection
	switch r := req.(type) {
	case headers.Source:
		coll = r.Headers()
	case *http.Request:
		coll = headers.FromRequest(r).Headers()
	case headers.Collection:
		coll = r
	case http.Header:
		coll = headers.FromHTTP(r)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidRequest, req)
	}

	if isNilValue(coll) {
		return nil, ErrMissingHeaders
	}
	return coll, nil
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return rv.IsNil()
	}
	return false
}
