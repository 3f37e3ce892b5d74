package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "kgraph/internal/adapters/mcp"
	"kgraph/internal/adapters/sqlite"
	"kgraph/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the graph database")
	transportFlag := flag.String("transport", config.Transport(), "transport: stdio or http")
	addrFlag := flag.String("addr", config.Addr(), "listen address for the http transport")
	flag.Parse()

	store, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("kgraph-mcp: open %s: %v", *dbFlag, err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"kgraph",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)
	mcpadapter.RegisterDocumentTools(mcpServer, store)
	mcpadapter.RegisterSchemaResource(mcpServer)

	switch *transportFlag {
	case "stdio":
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf("kgraph-mcp: %v", err)
		}
	case "http":
		httpServer := server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true))
		log.Printf("kgraph-mcp: listening on %s", *addrFlag)
		if err := httpServer.Start(*addrFlag); err != nil {
			log.Fatalf("kgraph-mcp: %v", err)
		}
	default:
		log.Fatal(fmt.Errorf("kgraph-mcp: unknown transport %q", *transportFlag))
	}
}
