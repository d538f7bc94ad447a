package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"warp/internal/adapters/filesystem"
	mcpadapter "warp/internal/adapters/mcp"
	"warp/internal/adapters/sqlite"
	"warp/internal/config"
)

func main() {
	storeFlag := flag.String("store", config.StorePath(), "path to the shortcut store")
	flag.Parse()

	store := filesystem.NewStore(*storeFlag)
	index := sqlite.NewIndex(store.Path())
	if err := index.Open(); err != nil {
		log.Fatalf("warp-mcp: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"warp-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, index)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("warp-mcp: %v", err)
	}
}
