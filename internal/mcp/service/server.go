package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	lotteryservice "github.com/louisbranch/lotofacil/internal/lotofacil/service"
	"github.com/louisbranch/lotofacil/internal/mcp/domain"
	platformgrpc "github.com/louisbranch/lotofacil/internal/platform/grpc"
	"github.com/louisbranch/lotofacil/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	serverName      = "lotofacil-mcp"
	serverVersion   = "0.1.0"
	defaultHTTPAddr = "localhost:8091"
)

// TransportKind selects the MCP transport.
type TransportKind string

const (
	// TransportStdio runs MCP over stdin/stdout for local tool hosts.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// GRPCAddr points at a lottery server; empty runs the lottery in-process.
	GRPCAddr  string
	Transport TransportKind
	HTTPAddr  string
	// Locale selects the language of reports and error messages.
	Locale string
}

// Server is an MCP server exposing the lottery tools.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// NewServer creates an MCP server backed by lottery.
func NewServer(lottery lotteryservice.Lottery, locale string) *Server {
	return newServer(lottery, nil, locale)
}

func newServer(lottery lotteryservice.Lottery, conn *grpc.ClientConn, locale string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.GenerateBatchTool(), domain.GenerateBatchHandler(lottery, locale))
	mcp.AddTool(mcpServer, domain.EvaluateTicketTool(), domain.EvaluateTicketHandler(lottery, locale))
	mcp.AddTool(mcpServer, domain.RulesTool(), domain.RulesHandler())
	return &Server{mcpServer: mcpServer, conn: conn}
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.Transport == TransportHTTP {
		addr := cfg.HTTPAddr
		if addr == "" {
			addr = defaultHTTPAddr
		}
		return server.ListenAndServe(ctx, addr)
	}
	return server.Serve(ctx)
}

func open(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.GRPCAddr)
	if addr == "" {
		return newServer(lotteryservice.New(), nil, cfg.Locale), nil
	}
	conn, err := dialLottery(ctx, addr)
	if err != nil {
		return nil, err
	}
	return newServer(lotteryservice.NewClient(conn), conn, cfg.Locale), nil
}

func dialLottery(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	logf := func(format string, args ...any) {
		log.Printf("lottery %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		lotteryservice.ServiceName,
		timeouts.GRPCDial,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("connect to lottery server at %s: %w", addr, err)
	}
	return conn, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server, if any.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP session loop and closes the server on exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return s.finish("serve MCP", err)
}

func (s *Server) finish(action string, err error) error {
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("%s: %v; close gRPC connection: %w", action, err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}
