// Package mcp exposes compat resolution over the Model Context Protocol.
//
// The bridge is read-only: it binds resolution and listing tools to the compat
// gRPC API and leaves override mutations to compatctl, so agent sessions can
// inspect gate state without being able to flip it.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"github.com/sdkgate/sdkgate/internal/platform/branding"
	platformgrpc "github.com/sdkgate/sdkgate/internal/platform/grpc"
	"github.com/sdkgate/sdkgate/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// Server hosts the MCP server and the compat gRPC connection behind it.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New connects to the compat server and binds the tool handlers to its API.
func New(ctx context.Context, addr string) (*Server, error) {
	conn, err := dialCompatGRPC(ctx, addr)
	if err != nil {
		return nil, err
	}
	return newServer(conn), nil
}

func newServer(conn *grpc.ClientConn) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(mcpServer, compatv1.NewCompatServiceClient(conn))
	return &Server{mcpServer: mcpServer, conn: conn}
}

func registerTools(server *mcp.Server, client compatv1.CompatServiceClient) {
	mcp.AddTool(server, IsChangeEnabledTool(), IsChangeEnabledHandler(client))
	mcp.AddTool(server, LookupChangeTool(), LookupChangeHandler(client))
	mcp.AddTool(server, DisabledChangesTool(), DisabledChangesHandler(client))
	mcp.AddTool(server, ListChangesTool(), ListChangesHandler(client))
}

// Run dials the compat server and serves MCP over stdio until the context ends.
func Run(ctx context.Context, addr string) error {
	server, err := New(ctx, addr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
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

// serveWithTransport starts the MCP server using the provided transport. The
// server and its gRPC connection share a single exit path so cleanup behavior
// is the same however the run ends.
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
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func dialCompatGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logf := func(format string, args ...any) {
		log.Printf("compat %s", fmt.Sprintf(format, args...))
	}
	service := compatv1.CompatService_ServiceDesc.ServiceName
	conn, err := platformgrpc.DialServiceWithHealth(ctx, nil, addr, service, timeouts.GRPCDial, logf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageConnect {
				return nil, fmt.Errorf("connect to compat server at %s: %w", addr, dialErr.Err)
			}
			return nil, dialErr.Err
		}
		return nil, err
	}
	return conn, nil
}
