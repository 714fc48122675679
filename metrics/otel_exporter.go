package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry

	// OTel meters and instruments
	meter             metric.Meter
	runsCounter       metric.Int64Counter
	durationHistogram metric.Float64Histogram
	lastDeliveryGauge metric.Int64ObservableGauge

	// unix seconds of the last delivered notification
	lastDelivery atomic.Int64
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format.
// Metrics are registered on registry together with the Go runtime and process collectors.
func NewOTelExporter(registry *promclient.Registry) (*OTelExporter, error) {
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("registering process collector: %w", err)
	}

	// Create Prometheus exporter
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"contentful-notifier",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.runsCounter, err = oe.meter.Int64Counter(
		"notification.pipeline.runs",
		metric.WithDescription("Number of change notifications processed, by result"),
		metric.WithUnit("{runs}"),
	)
	if err != nil {
		return fmt.Errorf("creating runs counter: %w", err)
	}

	oe.durationHistogram, err = oe.meter.Float64Histogram(
		"notification.pipeline.duration",
		metric.WithDescription("Time spent processing a change notification"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	oe.lastDeliveryGauge, err = oe.meter.Int64ObservableGauge(
		"notification.last_delivery.timestamp",
		metric.WithDescription("Unix time of the last notification delivered to Slack"),
		metric.WithUnit("s"),
		metric.WithInt64Callback(oe.observeLastDelivery),
	)
	if err != nil {
		return fmt.Errorf("creating last delivery gauge: %w", err)
	}

	return nil
}

// Observe implements Recorder
func (oe *OTelExporter) Observe(ctx context.Context, outcome Outcome) {
	attrs := []attribute.KeyValue{
		attribute.String("entity.type", outcome.EntityType),
		attribute.String("result", outcome.Result),
	}
	if outcome.ErrorKind != "" {
		attrs = append(attrs, attribute.String("error.kind", outcome.ErrorKind))
	}

	oe.runsCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	oe.durationHistogram.Record(ctx, outcome.Duration.Seconds(), metric.WithAttributes(
		attribute.String("result", outcome.Result),
	))

	if outcome.Result == ResultDelivered {
		oe.lastDelivery.Store(time.Now().Unix())
	}
}

// observeLastDelivery is a callback that reports the last delivery time
func (oe *OTelExporter) observeLastDelivery(_ context.Context, observer metric.Int64Observer) error {
	if last := oe.lastDelivery.Load(); last > 0 {
		observer.Observe(last)
	}
	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
