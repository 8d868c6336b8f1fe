// Command swarm-provenance-mcp serves Swarm postage stamp and provenance
// tools over the MCP protocol, backed by a swarm_connect gateway.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datafund/swarm-provenance-mcp/pkg/config"
	"github.com/datafund/swarm-provenance-mcp/pkg/gateway"
	"github.com/datafund/swarm-provenance-mcp/pkg/mcp"
)

var (
	transport string
	listen    string
)

var rootCmd = &cobra.Command{
	Use:   "swarm-provenance-mcp",
	Short: "MCP server for Swarm postage stamps and provenance records",
	Long: `Serves postage stamp management, data upload/download, and provenance
record tooling as MCP tools backed by a swarm_connect gateway.

Configuration comes from SWARM_MCP_* environment variables:

  SWARM_MCP_GATEWAY_URL           gateway base URL
  SWARM_MCP_DEFAULT_STAMP_AMOUNT  default purchase amount
  SWARM_MCP_DEFAULT_STAMP_DEPTH   default purchase depth
  SWARM_MCP_SERVER_NAME           reported server name
  SWARM_MCP_SERVER_VERSION        reported server version
  SWARM_MCP_DEBUG                 verbose logging`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&transport, "transport", "stdio", `transport to serve: "stdio" or "http"`)
	rootCmd.Flags().StringVar(&listen, "listen", ":8080", "listen address for the http transport")
}

// initLogger routes all log output to stderr. The stdio transport owns
// stdout, so nothing else may write there.
func initLogger(debug bool) error {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := c.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := initLogger(cfg.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	server := mcp.NewServer(cfg, gateway.New(cfg))

	switch transport {
	case "stdio":
		zap.L().Info("serving MCP over stdio",
			zap.String("gateway", cfg.GatewayURL))
		return server.ServeStdio()
	case "http":
		zap.L().Info("serving MCP over http",
			zap.String("listen", listen),
			zap.String("gateway", cfg.GatewayURL))
		return server.ServeHTTP(listen)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", transport)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
