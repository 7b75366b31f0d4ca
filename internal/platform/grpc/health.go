package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthBackoff controls how often WaitForHealth probes the server.
type HealthBackoff struct {
	Initial     time.Duration
	Max         time.Duration
	CallTimeout time.Duration
}

// DefaultHealthBackoff starts at 200ms and doubles up to one second.
var DefaultHealthBackoff = HealthBackoff{
	Initial:     200 * time.Millisecond,
	Max:         time.Second,
	CallTimeout: time.Second,
}

func (b HealthBackoff) next(current time.Duration) time.Duration {
	if current >= b.Max {
		return b.Max
	}
	return min(current*2, b.Max)
}

// ProbeHealth performs a single health check for service.
func ProbeHealth(ctx context.Context, conn gogrpc.ClientConnInterface, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	response, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, err
	}
	return response.GetStatus(), nil
}

// WaitForHealth blocks until service reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn gogrpc.ClientConnInterface, service string, logf func(string, ...any)) error {
	return WaitForHealthWithBackoff(ctx, conn, service, DefaultHealthBackoff, logf)
}

// WaitForHealthWithBackoff is WaitForHealth with an explicit probe schedule.
func WaitForHealthWithBackoff(ctx context.Context, conn gogrpc.ClientConnInterface, service string, backoff HealthBackoff, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	label := service
	if label == "" {
		label = "server"
	}

	delay := backoff.Initial
	for {
		callCtx, cancel := context.WithTimeout(ctx, backoff.CallTimeout)
		status, err := ProbeHealth(callCtx, conn, service)
		cancel()
		switch {
		case err != nil:
			logf("waiting for %s health: %v", label, err)
		case status == grpc_health_v1.HealthCheckResponse_SERVING:
			logf("%s is SERVING", label)
			return nil
		default:
			logf("waiting for %s health: status %s", label, status)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("wait for %s health: %w", label, ctx.Err())
		case <-timer.C:
		}
		delay = backoff.next(delay)
	}
}
