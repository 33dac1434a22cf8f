package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"reserved/pkg/domain"
	"reserved/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
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

func sumByReason(t *testing.T, m metricdata.Metrics) map[string]int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not an int64 sum", m.Name)

	out := map[string]int64{}
	for _, dp := range sum.DataPoints {
		reason, _ := dp.Attributes.Value(attribute.Key("reason"))
		out[reason.AsString()] += dp.Value
	}

	return out
}

func TestRecorderCounts(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	rec, err := metrics.New(reader)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		rec.RowRead(ctx)
	}
	rec.RowDropped(ctx, domain.DropBrandWord)
	rec.RowDropped(ctx, domain.DropBrandWord)
	rec.RowDropped(ctx, domain.DropMalformedRow)
	rec.DomainAccepted(ctx)
	rec.DomainAccepted(ctx)
	rec.RunFinished(ctx, 3*time.Second)

	got := collect(t, reader)

	require.Equal(t, map[string]int64{"": 5}, sumByReason(t, got["reserved.rows.read"]))
	require.Equal(t, map[string]int64{"": 2}, sumByReason(t, got["reserved.domains.accepted"]))
	require.Equal(t, map[string]int64{
		string(domain.DropBrandWord):    2,
		string(domain.DropMalformedRow): 1,
	}, sumByReason(t, got["reserved.rows.dropped"]))

	hist, ok := got["reserved.run.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(1), hist.DataPoints[0].Count)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)

	require.NoError(t, rec.Shutdown(ctx))
}

func TestPrometheusTextfile(t *testing.T) {
	ctx := context.Background()
	rec, registry, err := metrics.NewPrometheus()
	require.NoError(t, err)

	rec.RowRead(ctx)
	rec.RowDropped(ctx, domain.DropDuplicateSLD)

	path := filepath.Join(t.TempDir(), "reserved.prom")
	require.NoError(t, metrics.WriteTextfile(path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, "reserved_rows_read"), text)
	require.True(t, strings.Contains(text, `reason="duplicate_sld"`), text)
}
