package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return reader, mp
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

// counterValue sums the data points of an int64 counter whose attributes contain every attr
func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	m, ok := findMetric(rm, name)
	if !ok {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", name)

	var total int64
	for _, dp := range sum.DataPoints {
		matched := true
		for _, kv := range attrs {
			v, found := dp.Attributes.Value(kv.Key)
			if !found || v != kv.Value {
				matched = false
				break
			}
		}
		if matched {
			total += dp.Value
		}
	}
	return total
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), MetricsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestCounter(t *testing.T) {
	reader, mp := newTestMeter(t)
	c, err := NewCounter(mp.Meter("test"), "things_total", "Things", "{thing}")
	require.NoError(t, err)

	ctx := context.Background()
	c.Inc(ctx, AttrStatus.String("ok"))
	c.Add(ctx, 4, AttrStatus.String("ok"))
	c.Inc(ctx, AttrStatus.String("failed"))

	rm := collect(t, reader)
	assert.Equal(t, int64(5), counterValue(t, rm, "things_total", AttrStatus.String("ok")))
	assert.Equal(t, int64(1), counterValue(t, rm, "things_total", AttrStatus.String("failed")))
}

func TestHistogram_RecordDuration(t *testing.T) {
	reader, mp := newTestMeter(t)
	h, err := NewHistogram(mp.Meter("test"), "latency_seconds", "Latency", "s", DBDurationBuckets...)
	require.NoError(t, err)

	h.RecordDuration(context.Background(), 20*time.Millisecond)
	h.RecordDuration(context.Background(), 2*time.Second)

	m, ok := findMetric(collect(t, reader), "latency_seconds")
	require.True(t, ok)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.Equal(t, DBDurationBuckets, hist.DataPoints[0].Bounds)
}

func TestGauge_Record(t *testing.T) {
	reader, mp := newTestMeter(t)
	g, err := NewGauge(mp.Meter("test"), "pool_size", "Pool", "{connection}")
	require.NoError(t, err)

	g.Record(context.Background(), 3)
	g.Record(context.Background(), 7)

	m, ok := findMetric(collect(t, reader), "pool_size")
	require.True(t, ok)
	gauge, ok := m.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(7), gauge.DataPoints[0].Value)
}
