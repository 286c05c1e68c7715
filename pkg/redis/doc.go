// Package redis connects to Redis and exposes it as a detector cache backend.
//
// Connect retries until the server answers PING. Storage implements
// cache.KeyValueCache on top of any go-redis UniversalClient, namespacing keys
// with a prefix, and Healthcheck returns a probe for readiness checks. Clear
// only removes keys under the prefix and fails with ErrClearWithoutPrefix
// when the storage has none.
//
// Config is loadable from the environment with config.Load:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := redis.NewStorageWithConfig(client, cfg)
//	defer store.Close()
//
// A Storage can be registered in a container.Registry and referenced from the
// detector configuration by its service key:
//
//	_ = reg.Set("cache.redis", store)
//
//	device-detector:
//	  cache: cache.redis
//
// Errors from this package are sentinels joined with the go-redis cause, for
// example ErrRedisNotReady and ErrHealthcheckFailed.
package redis
