// Package timeouts defines shared timeout constants used across binaries.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the lottery gRPC server.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single remote batch generation.
// The worst case is BatchSize*MaxAttempts samples, which stays well below it.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the MCP HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
