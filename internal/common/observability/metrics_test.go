package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestRecorders(t *testing.T) {
	reader := metric.NewManualReader()
	obs := NewWithReader("loan-test", reader)
	defer obs.Shutdown(context.Background())

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "calculate-emi", "success")
	obs.RecordJobProcessed(ctx, "calculate-emi", "success")
	obs.RecordJobDuration(ctx, "calculate-emi", 120*time.Millisecond, "success")
	obs.RecordSanction(ctx, 300000)
	obs.RecordSanction(ctx, 0)

	metrics := collect(t, reader)

	processed, ok := metrics["loan.jobs.processed"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, processed.DataPoints, 1)
	assert.Equal(t, int64(2), processed.DataPoints[0].Value)

	duration, ok := metrics["loan.jobs.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 1)
	assert.Equal(t, uint64(1), duration.DataPoints[0].Count)

	sanctioned, ok := metrics["loan.sanctioned.amount"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sanctioned.DataPoints, 1)
	assert.Equal(t, int64(300000), sanctioned.DataPoints[0].Value)
}

func TestZeroValueIsNoOp(t *testing.T) {
	var obs Observability
	obs.RecordJobProcessed(context.Background(), "x", "failed")
	obs.RecordSanction(context.Background(), 10)
	assert.NoError(t, obs.Shutdown(context.Background()))
}
