// Package metrics counts the outcome of pipeline rows with the OpenTelemetry
// metric API. Counters are exported through the OpenTelemetry Prometheus
// exporter into a private registry that can be written to a node_exporter
// textfile once the run is over.
package metrics

import (
	"context"
	"fmt"
	"reserved/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// meterName is the instrumentation scope of every instrument.
const meterName = "reserved"

// DefaultBuckets provides histogram buckets in seconds sized for a single
// batch run over a large ranked list.
var DefaultBuckets = []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300} //nolint: gochecknoglobals

// Recorder counts rows read, rows dropped per reason and domains accepted.
type Recorder struct {
	provider *sdkmetric.MeterProvider

	rowsRead    metric.Int64Counter
	rowsDropped metric.Int64Counter
	accepted    metric.Int64Counter
	duration    metric.Float64Histogram

	reasons map[domain.DropReason]metric.AddOption
}

// New creates a Recorder whose measurements are collected by reader.
func New(reader sdkmetric.Reader) (*Recorder, error) {
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter(meterName)

	r := &Recorder{
		provider: provider,
		reasons:  make(map[domain.DropReason]metric.AddOption, len(domain.DropReasons)),
	}

	var err error
	if r.rowsRead, err = meter.Int64Counter("reserved.rows.read",
		metric.WithDescription("Data rows read from the ranked input")); err != nil {
		return nil, fmt.Errorf("could not create rows read counter: %w", err)
	}
	if r.rowsDropped, err = meter.Int64Counter("reserved.rows.dropped",
		metric.WithDescription("Data rows discarded, by the first rule they failed")); err != nil {
		return nil, fmt.Errorf("could not create rows dropped counter: %w", err)
	}
	if r.accepted, err = meter.Int64Counter("reserved.domains.accepted",
		metric.WithDescription("Canonical domains recorded for the output")); err != nil {
		return nil, fmt.Errorf("could not create domains accepted counter: %w", err)
	}
	if r.duration, err = meter.Float64Histogram("reserved.run.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall time of a pipeline run"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create run duration histogram: %w", err)
	}

	for _, reason := range domain.DropReasons {
		r.reasons[reason] = metric.WithAttributeSet(attribute.NewSet(attribute.String("reason", string(reason))))
	}

	return r, nil
}

// NewPrometheus creates a Recorder exported into a fresh Prometheus registry.
func NewPrometheus() (*Recorder, *prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	r, err := New(exp)
	if err != nil {
		return nil, nil, err
	}

	return r, registry, nil
}

// RowRead counts one data row.
func (r *Recorder) RowRead(ctx context.Context) {
	r.rowsRead.Add(ctx, 1)
}

// RowDropped counts one discarded row under reason.
func (r *Recorder) RowDropped(ctx context.Context, reason domain.DropReason) {
	opt, ok := r.reasons[reason]
	if !ok {
		opt = metric.WithAttributes(attribute.String("reason", string(reason)))
	}
	r.rowsDropped.Add(ctx, 1, opt)
}

// DomainAccepted counts one recorded canonical domain.
func (r *Recorder) DomainAccepted(ctx context.Context) {
	r.accepted.Add(ctx, 1)
}

// RunFinished records the wall time of a run.
func (r *Recorder) RunFinished(ctx context.Context, elapsed time.Duration) {
	r.duration.Record(ctx, elapsed.Seconds())
}

// Shutdown flushes and stops the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}

// WriteTextfile writes everything g gathers to path in the Prometheus text
// format, atomically, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
