package mcp

import (
	"context"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/datafund/swarm-provenance-mcp/pkg/config"
	"github.com/datafund/swarm-provenance-mcp/pkg/gateway"
)

// Gateway is the slice of the gateway client the tool handlers need.
// Separated out so tests can drive the handlers against a stub.
type Gateway interface {
	PurchaseStamp(ctx context.Context, amount uint64, depth int, label string) (*gateway.BatchResponse, error)
	GetStampDetails(ctx context.Context, stampID string) (*gateway.StampInfo, error)
	ListStamps(ctx context.Context) (*gateway.StampList, error)
	ExtendStamp(ctx context.Context, stampID string, amount uint64) (*gateway.BatchResponse, error)
	UploadData(ctx context.Context, data []byte, stampID, contentType string) (*gateway.UploadResponse, error)
	DownloadData(ctx context.Context, reference string) ([]byte, error)
	HealthCheck(ctx context.Context) (*gateway.HealthStatus, error)
}

// Server exposes the Swarm provenance tools over the MCP protocol. Each tool
// call is stateless: arguments in, gateway calls, text result out. Nothing
// is cached between calls, so one server instance handles concurrent
// sessions without coordination.
type Server struct {
	cfg       *config.Config
	gw        Gateway
	mcpServer *mcpserver.MCPServer
}

// NewServer wires the tool set onto a fresh MCP server.
func NewServer(cfg *config.Config, gw Gateway) *Server {
	s := &Server{
		cfg: cfg,
		gw:  gw,
		mcpServer: mcpserver.NewMCPServer(
			cfg.ServerName,
			cfg.ServerVersion,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpServer)
}

// ServeHTTP blocks serving the streamable HTTP transport on addr.
func (s *Server) ServeHTTP(addr string) error {
	return mcpserver.NewStreamableHTTPServer(s.mcpServer).Start(addr)
}
