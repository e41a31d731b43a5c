// Package telemetry provides OpenTelemetry tracing for maze generation and export.
//
// Every trace exported by one maze-maker invocation carries that invocation's
// Run on its resource, so spans never repeat the run identity themselves.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "maze-maker"
	serviceVersion = "0.1.0"
)

// Run identifies one maze-maker invocation.
type Run struct {
	ID   string
	Seed int64
	Rows int
	Cols int
}

// NewRun stamps a fresh run ID on a maze of the given shape and seed.
func NewRun(seed int64, rows, cols int) Run {
	return Run{ID: uuid.NewString(), Seed: seed, Rows: rows, Cols: cols}
}

// Attributes returns the run as resource attributes.
func (r Run) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("maze.run_id", r.ID),
		attribute.Int64("maze.seed", r.Seed),
		attribute.Int("maze.rows", r.Rows),
		attribute.Int("maze.cols", r.Cols),
	}
}

// Setup installs an OTLP/HTTP tracer provider for run. Endpoint and headers
// come from the standard OTEL_EXPORTER_OTLP_* environment variables.
// The returned shutdown flushes pending spans and must be called on exit.
// Until Setup is called the global provider is a no-op.
func Setup(ctx context.Context, run Run) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, run)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes the service, the host and the run.
// Built without resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context, run Run) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", getHostname()),
		attribute.String("os.type", runtime.GOOS),
	}
	return resource.New(ctx, resource.WithAttributes(append(attrs, run.Attributes()...)...))
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
