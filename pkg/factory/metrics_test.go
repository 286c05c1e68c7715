package factory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
	"github.com/dmitrymomot/devicedetector/pkg/factory"
	"github.com/dmitrymomot/devicedetector/pkg/headers"
	"github.com/dmitrymomot/devicedetector/pkg/metrics"
)

func TestFactory_WithMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	f := factory.New(nil, factory.WithMetrics(m))
	ctx := context.Background()
	req := headers.New(map[string]string{"User-Agent": chromeUA})

	d, err := f.BuildFrom(ctx, req, factory.Typed(factory.StaticConfig{Cache: cache.NewMemory(8)}))
	require.NoError(t, err)
	_, err = d.Parse(ctx)
	require.NoError(t, err)
	_, err = d.Parse(ctx)
	require.NoError(t, err)

	_, err = f.BuildFrom(ctx, req, factory.Raw(detectorSection(map[string]any{"cache": struct{}{}})))
	require.NoError(t, err)

	_, err = f.BuildFrom(ctx, nil, factory.Raw(nil))
	require.ErrorIs(t, err, factory.ErrInvalidRequest)

	expected := `
# HELP devicedetector_builds_total Detector builds by cache kind and result.
# TYPE devicedetector_builds_total counter
devicedetector_builds_total{cache_kind="key-value",result="ok"} 1
devicedetector_builds_total{cache_kind="none",result="error"} 1
devicedetector_builds_total{cache_kind="none",result="ok"} 1
# HELP devicedetector_cache_degraded_total Builds that continued without a cache because the configured one was unusable.
# TYPE devicedetector_cache_degraded_total counter
devicedetector_cache_degraded_total 1
# HELP devicedetector_cache_lookups_total Parse result cache lookups by outcome.
# TYPE devicedetector_cache_lookups_total counter
devicedetector_cache_lookups_total{result="hit"} 1
devicedetector_cache_lookups_total{result="miss"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}
