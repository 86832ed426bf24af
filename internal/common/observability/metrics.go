// Package observability exposes OpenTelemetry job instruments through the
// Prometheus registry served on /metrics.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	jobCounter    otelmetric.Int64Counter
	jobDuration   otelmetric.Float64Histogram
	sanctioned    otelmetric.Int64Counter
}

// New registers a Prometheus exporter. On failure it returns an
// Observability whose recorders are no-ops.
func New(serviceName string) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return &Observability{}, err
	}
	return NewWithReader(serviceName, exporter), nil
}

// NewWithReader builds the instruments on a meter provider backed by reader.
func NewWithReader(serviceName string, reader metric.Reader) *Observability {
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	jobCounter, _ := meter.Int64Counter(
		"loan.jobs.processed",
		otelmetric.WithDescription("Number of loan jobs processed"),
	)
	jobDuration, _ := meter.Float64Histogram(
		"loan.jobs.duration",
		otelmetric.WithDescription("Loan job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	sanctioned, _ := meter.Int64Counter(
		"loan.sanctioned.amount",
		otelmetric.WithDescription("Total principal sanctioned"),
		otelmetric.WithUnit("INR"),
	)

	return &Observability{
		meterProvider: provider,
		jobCounter:    jobCounter,
		jobDuration:   jobDuration,
		sanctioned:    sanctioned,
	}
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o.jobCounter != nil {
		o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("task_type", taskType),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o.jobDuration != nil {
		o.jobDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("task_type", taskType),
			attribute.String("status", status),
		))
	}
}

// RecordSanction adds a sanctioned principal.
func (o *Observability) RecordSanction(ctx context.Context, amount int64) {
	if o.sanctioned != nil && amount > 0 {
		o.sanctioned.Add(ctx, amount)
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
