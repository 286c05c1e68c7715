// Package detector classifies HTTP clients by device, operating system,
// browser and bot status.
//
// A Detector combines the User-Agent string with User-Agent client hints.
// Hints win where present: a "?1" mobile hint marks the device mobile, the
// platform hint sets the operating system and the brand list picks the
// browser. Bots are never overlaid with hints.
//
//	d := detector.New()
//	d.SetUserAgent(r.UserAgent())
//	d.SetClientHints(clienthints.FromHeaders(raw))
//	d.SetCache(handle)
//
//	res, err := d.Parse(ctx)
//	if err != nil && !errors.Is(err, detector.ErrCache) {
//	    return err
//	}
//
// Results are stored as JSON through the cache handle under a short hashed
// key, so every backend accepted by cache.Classify can hold them. Without a
// configured handle the detector uses cache.Static.
//
// Detectors are normally produced by the factory package, which resolves the
// cache and bot flags from configuration.
package detector
