//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/louisbranch/lotofacil/internal/lotofacil/service"
	platformgrpc "github.com/louisbranch/lotofacil/internal/platform/grpc"
	"github.com/louisbranch/lotofacil/internal/server"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// integrationTimeout returns the default timeout for integration calls.
func integrationTimeout() time.Duration {
	return 10 * time.Second
}

// startGRPCServer boots the lottery server and returns its address and shutdown function.
func startGRPCServer(t *testing.T) (string, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	grpcServer, err := server.New("127.0.0.1:0", service.New())
	if err != nil {
		cancel()
		t.Fatalf("new gRPC server: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(ctx)
	}()

	addr := grpcServer.Addr()
	waitForGRPCHealth(t, addr)
	stop := func() {
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Fatalf("gRPC server error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for gRPC server to stop")
		}
	}

	return addr, stop
}

// startMCPClient boots the MCP stdio process against grpcAddr and returns a
// client session and shutdown function.
func startMCPClient(t *testing.T, grpcAddr, locale string) (*mcp.ClientSession, func()) {
	t.Helper()

	cmd := exec.Command("go", "run", "./cmd/mcp")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("LOTOFACIL_GRPC_ADDR=%s", grpcAddr),
		fmt.Sprintf("LOTOFACIL_LOCALE=%s", locale),
		"LOTOFACIL_MCP_TRANSPORT=stdio",
		"LOTOFACIL_OTEL_ENABLED=false",
	)
	cmd.Stderr = os.Stderr

	transport := &mcp.CommandTransport{Command: cmd}
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-client", Version: "dev"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	clientSession, err := client.Connect(ctx, transport, nil)
	if err != nil {
		t.Fatalf("connect MCP client: %v", err)
	}

	closeClient := func() {
		if err := clientSession.Close(); err != nil {
			t.Logf("close MCP client: %v", err)
		}
	}

	return clientSession, closeClient
}

// decodeStructuredContent decodes structured MCP content into the target type.
func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var output T
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return output
}

// repoRoot walks up from this file to the directory holding go.mod.
func repoRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to resolve runtime caller")
	}

	dir := filepath.Dir(filename)
	for {
		candidate := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	t.Fatalf("go.mod not found from %s", filename)
	return ""
}

// waitForGRPCHealth waits for the lottery service to report SERVING.
func waitForGRPCHealth(t *testing.T, addr string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, service.ServiceName, 5*time.Second, nil, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		t.Fatalf("wait for gRPC health: %v", err)
	}
	_ = conn.Close()
}
