// Package metrics exposes Prometheus counters for detector builds and parse
// cache lookups.
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.New(reg)
//	if err != nil {
//	    return err
//	}
//	f := factory.New(registry, factory.WithMetrics(m))
//
// Detectors built by such a factory report every Parse cache lookup as a hit,
// miss, error or corrupt entry. Serve reg with promhttp to scrape it.
package metrics
