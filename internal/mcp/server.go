package mcp

// Implementation Plan:
// 1. Server struct wrapping the engine and the mcp-go server
// 2. NewServer - creates server, registers all tools
// 3. Serve - starts MCP server on stdio with graceful shutdown
// 4. Graceful shutdown on SIGTERM/SIGINT

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/amponce/va-design-system-monitor/internal/registry"
)

// Server manages the MCP server lifecycle.
type Server struct {
	engine *registry.Engine
	logger *slog.Logger
	mcp    *server.MCPServer
}

// NewServer creates an MCP server exposing the monitor's operations as
// tools.
func NewServer(engine *registry.Engine, version string, logger *slog.Logger) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := server.NewMCPServer(
		"va-design-system-monitor",
		version,
		server.WithToolCapabilities(true),
	)

	AddComponentTools(mcpServer, engine)
	AddListTools(mcpServer, engine)
	AddValidationTools(mcpServer, engine)
	AddReportTool(mcpServer, engine)

	return &Server{engine: engine, logger: logger, mcp: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		s.logger.Info("received shutdown signal, stopping gracefully")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
