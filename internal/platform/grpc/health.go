package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout = time.Second
	healthInitialWait  = 200 * time.Millisecond
	healthMaxWait      = time.Second
)

// WaitForHealth blocks until the health check for service reports SERVING or
// the context ends. Probes back off exponentially up to one second between
// tries. An empty service name checks server-wide health.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	wait := healthInitialWait
	for {
		if probeHealth(ctx, client, service, logf) {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(wait):
		}
		wait = nextHealthWait(wait)
	}
}

// probeHealth runs one bounded health check and reports whether it served.
func probeHealth(ctx context.Context, client grpc_health_v1.HealthClient, service string, logf func(string, ...any)) bool {
	callCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	resp, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
		if logf != nil {
			logf("gRPC health check is SERVING")
		}
		return true
	}
	if logf != nil {
		if err != nil {
			logf("waiting for gRPC health: %v", err)
		} else {
			logf("waiting for gRPC health: status %s", resp.GetStatus().String())
		}
	}
	return false
}

func nextHealthWait(wait time.Duration) time.Duration {
	next := wait * 2
	if next > healthMaxWait {
		return healthMaxWait
	}
	return next
}
