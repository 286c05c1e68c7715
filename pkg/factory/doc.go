// Package factory builds configured detectors from a request and a loosely
// typed configuration.
//
// A build reads the User-Agent and client hint headers from the request,
// resolves the cache setting to a cache handle and normalizes the two bot
// flags. The configuration is either a typed Config or a raw mapping whose
// settings live under the "device-detector" section:
//
//	device-detector:
//	  cache: cache.redis            # service key, resolved through the Locator
//	  discard-bot-information: 1
//	  skip-bot-detection: false
//
// # Cache resolution
//
// The cache setting is classified once with DescriptorOf: nil or blank is
// absent, a string is a service key and anything else is a direct handle.
// Keys are looked up through the Locator; a failed lookup aborts the build
// with ErrServiceNotCreated. The candidate is then bridged by cache.Classify,
// item pools first. Candidates that match no protocol, or key-value caches
// with insufficient capabilities, are logged and the detector falls back to
// its static in-memory cache.
//
// # Usage
//
//	reg := container.New()
//	_ = reg.Set(factory.DefaultConfigKey, cfgMap)
//	_ = reg.RegisterShared("cache.redis", newRedisStorage)
//
//	f := factory.New(reg, factory.WithLogger(log))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    d, err := f.BuildFrom(r.Context(), r, factory.Raw(cfgMap))
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusInternalServerError)
//	        return
//	    }
//	    res, _ := d.Parse(r.Context())
//	    ...
//	}
//
// Build does the same with the request and configuration taken from the
// Locator under DefaultRequestKey and DefaultConfigKey.
//
// # Observability
//
// Log records of a build carry a request_id picked by requestid.Ensure.
// WithMetrics counts builds and degradations; a *metrics.Collector passed
// there also counts the parse cache lookups of every detector built.
//
// # Errors
//
// ErrInvalidRequest and ErrMissingHeaders report a wrong request value;
// ErrInvalidConfig a configuration of unsupported type; ErrServiceNotCreated a
// failed lookup, joined with its cause. Absent settings are never errors.
package factory
