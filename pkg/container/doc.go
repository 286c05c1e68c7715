// Package container is a small service registry used to look services up by
// string key, for example the cache backend a detector should use.
//
//	reg := container.New()
//	_ = reg.Set("request", headers.FromRequest(r))
//	_ = reg.RegisterShared("cache.redis", func(*container.Registry) (any, error) {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return redis.NewStorage(client), nil
//	})
//
//	svc, err := reg.Resolve("cache.redis")
//
// Shared factories run once; concurrent first lookups wait for the same call
// (golang.org/x/sync/singleflight). A failed shared factory is retried on the
// next Resolve. Errors are sentinel values usable with errors.Is: ErrNotFound
// for unknown keys and ErrResolve for factory failures.
package container
