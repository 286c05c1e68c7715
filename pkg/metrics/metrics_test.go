package metrics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
	"github.com/dmitrymomot/devicedetector/pkg/metrics"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, metrics.WithConstLabels(prometheus.Labels{"app": "test"}))
	require.NoError(t, err)

	m.BuildDone(cache.KindKeyValue, nil)
	m.BuildDone(cache.KindKeyValue, nil)
	m.BuildDone(cache.KindNone, errors.New("boom"))
	m.CacheDegraded()
	m.CacheLookup(metrics.LookupHit)
	m.CacheLookup(metrics.LookupMiss)
	m.CacheLookup(metrics.LookupMiss)

	expected := `
# HELP devicedetector_builds_total Detector builds by cache kind and result.
# TYPE devicedetector_builds_total counter
devicedetector_builds_total{app="test",cache_kind="key-value",result="ok"} 2
devicedetector_builds_total{app="test",cache_kind="none",result="error"} 1
# HELP devicedetector_cache_degraded_total Builds that continued without a cache because the configured one was unusable.
# TYPE devicedetector_cache_degraded_total counter
devicedetector_cache_degraded_total{app="test"} 1
# HELP devicedetector_cache_lookups_total Parse result cache lookups by outcome.
# TYPE devicedetector_cache_lookups_total counter
devicedetector_cache_lookups_total{app="test",result="hit"} 1
devicedetector_cache_lookups_total{app="test",result="miss"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("duplicate registration", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		_, err := metrics.New(reg)
		require.NoError(t, err)

		_, err = metrics.New(reg)
		assert.ErrorIs(t, err, metrics.ErrRegister)
		assert.Panics(t, func() { metrics.MustNew(reg) })
	})

	t.Run("namespaces do not clash", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		_, err := metrics.New(reg)
		require.NoError(t, err)
		_, err = metrics.New(reg, metrics.WithNamespace("other"))
		require.NoError(t, err)
	})

	t.Run("unregistered", func(t *testing.T) {
		t.Parallel()
		m, err := metrics.New(nil)
		require.NoError(t, err)
		assert.NotPanics(t, func() { m.CacheDegraded() })
	})
}

func TestCollector_Nil(t *testing.T) {
	t.Parallel()

	var m *metrics.Collector
	assert.NotPanics(t, func() {
		m.BuildDone(cache.KindNone, nil)
		m.CacheDegraded()
		m.CacheLookup(metrics.LookupHit)
	})
}
