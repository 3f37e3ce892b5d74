package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kgraph/internal/application"
	"kgraph/internal/application/commands"
	"kgraph/internal/ports"
)

// RegisterDocumentTools adds the session-document tools to the MCP
// server.
func RegisterDocumentTools(s *server.MCPServer, store ports.Store) {
	s.AddTool(docCreateTool(), docCreateHandler(store))
	s.AddTool(docAppendTool(), docAppendHandler(store))
	s.AddTool(docReadTool(), docReadHandler(store))
	s.AddTool(docSearchTool(), docSearchHandler(store))
	s.AddTool(docDeleteTool(), docDeleteHandler(store))
}

// --- kg_doc_create ---

func docCreateTool() mcp.Tool {
	return mcp.NewTool("kg_doc_create",
		mcp.WithDescription("Create a session document cross-referencing graph nodes."),
		mcp.WithString("title", mcp.Description("Document title"), mcp.Required()),
		mcp.WithNumber("session_number", mcp.Description("Session grouping number")),
		mcp.WithString("content", mcp.Description("Initial content")),
		mcp.WithString("node_ids", mcp.Description("JSON array of related node IDs")),
	)
}

func docCreateHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeIDs, err := application.ParseNodeIDs(req.GetString("node_ids", ""))
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewCreateDocumentCommand(store,
			req.GetString("title", ""),
			req.GetString("content", ""),
			req.GetInt("session_number", 0),
			nodeIDs,
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_doc_append ---

func docAppendTool() mcp.Tool {
	return mcp.NewTool("kg_doc_append",
		mcp.WithDescription("Append content to an existing document and merge its node-id list. Primary tool for incremental session distillation."),
		mcp.WithString("id", mcp.Description("Document ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("Content to append"), mcp.Required()),
		mcp.WithString("node_ids", mcp.Description("JSON array of node IDs to merge in")),
	)
}

func docAppendHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeIDs, err := application.ParseNodeIDs(req.GetString("node_ids", ""))
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewAppendDocumentCommand(store,
			req.GetString("id", ""),
			req.GetString("content", ""),
			nodeIDs,
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_doc_read ---

func docReadTool() mcp.Tool {
	return mcp.NewTool("kg_doc_read",
		mcp.WithDescription("Read a full document by ID."),
		mcp.WithString("id", mcp.Description("Document ID"), mcp.Required()),
	)
}

func docReadHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewReadDocumentCommand(store, req.GetString("id", "")).Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_doc_search ---

func docSearchTool() mcp.Tool {
	return mcp.NewTool("kg_doc_search",
		mcp.WithDescription("Search documents by session number or text; with neither, list the most recent."),
		mcp.WithString("q", mcp.Description("Substring to match on title or content")),
		mcp.WithNumber("session", mcp.Description("Exact session number (takes priority over q)")),
		mcp.WithNumber("limit", mcp.Description("Maximum results (default 10)")),
	)
}

func docSearchHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSearchDocumentsCommand(store,
			req.GetString("q", ""),
			req.GetInt("session", 0),
			req.GetInt("limit", 10),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_doc_delete ---

func docDeleteTool() mcp.Tool {
	return mcp.NewTool("kg_doc_delete",
		mcp.WithDescription("Delete a document by ID. Destructive."),
		mcp.WithString("id", mcp.Description("Document ID"), mcp.Required()),
	)
}

func docDeleteHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteDocumentCommand(store, req.GetString("id", "")).Execute(ctx)
		return toolResult(result, err)
	}
}
