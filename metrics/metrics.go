package metrics

import (
	"context"
	"time"
)

// Pipeline results used as the "result" attribute.
const (
	ResultDelivered = "delivered"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)

// Outcome describes one finished run of the notification pipeline.
type Outcome struct {
	// EntityType is one of Entry, Asset, ContentType or unknown
	EntityType string

	// Result is one of ResultDelivered, ResultSkipped or ResultFailed
	Result string

	// ErrorKind classifies failed runs (e.g. "upstream", "lookup_miss")
	ErrorKind string

	// Duration is the wall time spent in the pipeline
	Duration time.Duration
}

// Recorder defines the interface for recording pipeline metrics.
type Recorder interface {
	// Observe records a finished pipeline run
	Observe(ctx context.Context, outcome Outcome)
}

// Noop is a Recorder that discards everything.
type Noop struct{}

// Observe implements Recorder.
func (Noop) Observe(context.Context, Outcome) {}
