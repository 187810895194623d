package otel_test

import (
	"context"
	"testing"

	"github.com/sdkgate/sdkgate/internal/platform/otel"
)

func TestSetupReturnsNoopWhenTracingIsOff(t *testing.T) {
	cases := []struct {
		name     string
		endpoint string
		enabled  string
	}{
		{name: "no endpoint", endpoint: "", enabled: ""},
		{name: "blank endpoint", endpoint: "   ", enabled: ""},
		{name: "explicitly disabled", endpoint: "http://localhost:4318", enabled: "false"},
		{name: "disabled ignores case", endpoint: "http://localhost:4318", enabled: "FALSE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SDKGATE_OTEL_ENDPOINT", tc.endpoint)
			t.Setenv("SDKGATE_OTEL_ENABLED", tc.enabled)

			shutdown, err := otel.Setup(context.Background(), "test-service")
			if err != nil {
				t.Fatalf("setup: %v", err)
			}

			// A no-op shutdown must succeed even with a dead context.
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			if err := shutdown(ctx); err != nil {
				t.Fatalf("noop shutdown: %v", err)
			}
		})
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export traffic leaves the test.
	t.Setenv("SDKGATE_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SDKGATE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	// With no recorded spans the flush is empty, so shutdown returns quickly
	// even though the endpoint is unreachable.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
