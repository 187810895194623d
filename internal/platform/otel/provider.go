// Package otel wires OpenTelemetry tracing for service commands.
package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/sdkgate/sdkgate/internal/platform/config"
)

// settings carries the tracing toggles read from the environment.
type settings struct {
	Endpoint string `env:"SDKGATE_OTEL_ENDPOINT"`
	Enabled  string `env:"SDKGATE_OTEL_ENABLED"`
}

func (s settings) disabled() bool {
	return strings.EqualFold(s.Enabled, "false") || strings.TrimSpace(s.Endpoint) == ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when SDKGATE_OTEL_ENDPOINT is empty or
// SDKGATE_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var cfg settings
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	if cfg.disabled() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	// OTEL_RESOURCE_ATTRIBUTES from the environment merge into the resource
	// so deployments can tag spans without a code change.
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
