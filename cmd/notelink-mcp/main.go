package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notelink/internal/adapters/filesystem"
	mcpadapter "notelink/internal/adapters/mcp"
	"notelink/internal/adapters/sqlite"
	"notelink/internal/application/commands"
	"notelink/internal/config"
	"notelink/internal/domain"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	settings, err := config.Load(*vaultFlag)
	if err != nil {
		log.Fatalf("notelink-mcp: %v", err)
	}
	cfg := settings.ScanConfig()

	repo := filesystem.NewRepository(*vaultFlag)
	index := domain.NewTitleIndex()

	cache := sqlite.NewCache()
	if err := cache.Open(*vaultFlag); err != nil {
		log.Fatalf("notelink-mcp: %v", err)
	}
	defer cache.Close()

	// Populate the index before serving so the first tool call sees titles.
	refresh := commands.NewRefreshCommand(repo, index, cache, cfg)
	if err := refresh.Execute(context.Background()); err != nil {
		log.Fatalf("notelink-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"notelink-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, index, repo, cfg)
	mcpadapter.RegisterWriteTools(mcpServer, repo, index, repo, cache, cfg)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("notelink-mcp: %v", err)
	}
}
