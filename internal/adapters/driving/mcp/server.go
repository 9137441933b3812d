package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Options carries the query settings every tool invocation uses.
type Options struct {
	// Table is the table to query. Empty selects the default.
	Table string

	// Embedding configures the provider used to embed queries. It must
	// match the options the table was indexed with.
	Embedding domain.EmbeddingOptions
}

// Server is the MCP server for Canopy.
type Server struct {
	ports  *Ports
	opts   Options
	server *mcp.Server
}

// NewServer creates an MCP server exposing the search and article
// ports as tools and resources.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		opts:  opts,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "canopy",
			Version: Version,
		}, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr until the context is
// cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
