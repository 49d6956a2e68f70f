package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bdurrett/joke-poc-mcp-server/internal/config"
	"github.com/bdurrett/joke-poc-mcp-server/internal/prompt"
	"github.com/bdurrett/joke-poc-mcp-server/internal/server"
)

// Container bundles the assembled components for running the service.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Catalog *prompt.Catalog
	Builder *prompt.Builder
	Server  *server.Server
}

// Build assembles the style catalog, prompt builder and MCP server. Catalog
// validation happens here, once, so handlers never see a misconfigured style
// table.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	catalog, err := prompt.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build style catalog: %w", err)
	}

	builder := prompt.NewBuilder(catalog)
	srv := server.New(builder, logger, server.Config{
		LogRequests:  cfg.Logging.LogRequests,
		LogResponses: cfg.Logging.LogResponses,
	})

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Builder: builder,
		Server:  srv,
	}, nil
}

// Run serves MCP traffic on the configured transport until ctx is cancelled.
func (c *Container) Run(ctx context.Context) error {
	switch c.Config.Server.Transport {
	case config.TransportStdio:
		return c.Server.ServeStdio(ctx)
	default:
		return c.Server.ServeSSE(ctx, c.Config.Addr())
	}
}
