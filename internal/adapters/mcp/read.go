package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kgraph/internal/application"
	"kgraph/internal/application/commands"
	"kgraph/internal/ports"
)

// RegisterReadTools adds all read-only graph tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.Store) {
	s.AddTool(bootTool(), bootHandler(store))
	s.AddTool(loadDomainTool(), loadDomainHandler(store))
	s.AddTool(unloadDomainTool(), unloadDomainHandler())
	s.AddTool(listDomainsTool(), listDomainsHandler(store))
	s.AddTool(getTool(), getHandler(store))
	s.AddTool(traverseTool(), traverseHandler(store))
	s.AddTool(searchTool(), searchHandler(store))
}

// --- kg_boot ---

func bootTool() mcp.Tool {
	return mcp.NewTool("kg_boot",
		mcp.WithDescription("Lean session init. Returns session state, the domain index, always-resident meta nodes, the edge count and recent document index entries. Only meta-domain nodes are fully loaded; use kg_load_domain for the rest. Call FIRST."),
		mcp.WithBoolean("include_edges",
			mcp.Description("Include the full edge list in the payload"),
		),
	)
}

func bootHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewBootCommand(store, store, store)
		cmd.IncludeEdges = req.GetBool("include_edges", false)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_load_domain ---

func loadDomainTool() mcp.Tool {
	return mcp.NewTool("kg_load_domain",
		mcp.WithDescription("Load a domain into context. Dot-notation selects hierarchically: 'infra' also loads 'infra.network'. depth 'full' returns nodes plus in-scope edges; 'index' returns the node list only."),
		mcp.WithString("name",
			mcp.Description("Domain name, e.g. 'infra' or 'research.papers'"),
			mcp.Required(),
		),
		mcp.WithString("depth",
			mcp.Description("'full' (default) or 'index'"),
		),
	)
}

func loadDomainHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewLoadDomainCommand(store,
			req.GetString("name", ""),
			req.GetString("depth", commands.DepthFull),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_unload_domain ---

func unloadDomainTool() mcp.Tool {
	return mcp.NewTool("kg_unload_domain",
		mcp.WithDescription("Signal that a domain is no longer needed in context. No server-side effect; returns a confirmation for conversation flow."),
		mcp.WithString("name",
			mcp.Description("Domain name"),
			mcp.Required(),
		),
	)
}

func unloadDomainHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolJSON(map[string]string{
			"op":     "unloaded",
			"domain": req.GetString("name", ""),
			"note":   "Domain removed from active context. Use kg_load_domain to reload.",
		})
	}
}

// --- kg_list_domains ---

func listDomainsTool() mcp.Tool {
	return mcp.NewTool("kg_list_domains",
		mcp.WithDescription("Full domain tree with counts and last activity."),
	)
}

func listDomainsHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListDomainsCommand(store).Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_get ---

func getTool() mcp.Tool {
	return mcp.NewTool("kg_get",
		mcp.WithDescription("Node plus its N-hop neighborhood (undirected, deduplicated edges). hops 0-3."),
		mcp.WithString("id",
			mcp.Description("Node ID"),
			mcp.Required(),
		),
		mcp.WithNumber("hops",
			mcp.Description("Neighborhood radius, 0-3 (default 1)"),
		),
	)
}

func getHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewNeighborhoodCommand(store,
			req.GetString("id", ""),
			req.GetInt("hops", 1),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_traverse ---

func traverseTool() mcp.Tool {
	return mcp.NewTool("kg_traverse",
		mcp.WithDescription("BFS subgraph from a start node, optionally following only one relation. Returns visited nodes and deduplicated edges."),
		mcp.WithString("start_id",
			mcp.Description("Start node ID"),
			mcp.Required(),
		),
		mcp.WithNumber("max_hops",
			mcp.Description("Maximum hops from the start (default 2)"),
		),
		mcp.WithString("relation_filter",
			mcp.Description("Only follow this relation (empty = all)"),
		),
	)
}

func traverseHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewTraverseCommand(store,
			req.GetString("start_id", ""),
			req.GetInt("max_hops", 2),
			req.GetString("relation_filter", ""),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("kg_search",
		mcp.WithDescription("Substring search over node id, summary, kai_note and meta."),
		mcp.WithString("q",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default 10)"),
		),
	)
}

func searchHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchNodesCommand(store,
			req.GetString("q", ""),
			req.GetInt("limit", 10),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// toolJSON marshals compact JSON; non-ASCII passes through unescaped.
func toolJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// toolResult renders a command outcome. Not-found conditions travel
// back through the normal response channel as {"error":"kind:id"};
// everything else is a tool failure.
func toolResult(v any, err error) (*mcp.CallToolResult, error) {
	var notFound *application.NotFoundError
	if errors.As(err, &notFound) {
		return toolJSON(map[string]string{"error": notFound.Code()})
	}
	if err != nil {
		return toolError(err)
	}
	return toolJSON(v)
}
