package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kgraph/internal/application"
	"kgraph/internal/application/commands"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// RegisterWriteTools adds all graph mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.Store) {
	s.AddTool(putNodeTool(), putNodeHandler(store))
	s.AddTool(putEdgeTool(), putEdgeHandler(store))
	s.AddTool(deleteNodeTool(), deleteNodeHandler(store))
	s.AddTool(deleteEdgeTool(), deleteEdgeHandler(store))
	s.AddTool(stateTool(), stateHandler(store))
	s.AddTool(bulkTool(), bulkHandler(store))
	s.AddTool(bulkSetDomainTool(), bulkSetDomainHandler(store))
}

// --- kg_put_node ---

func putNodeTool() mcp.Tool {
	return mcp.NewTool("kg_put_node",
		mcp.WithDescription("Upsert a node. Existing nodes are partially merged: omitted fields stay unchanged and meta is overlaid key by key. domain uses dot-notation ('infra', 'research.papers', 'meta'). type: "+
			strings.Join(domain.NodeTypes, "|")+". status: "+strings.Join(domain.NodeStatuses, "|")+"."),
		mcp.WithString("id",
			mcp.Description("Stable node slug"),
			mcp.Required(),
		),
		mcp.WithString("type", mcp.Description("Node type (advisory vocabulary)")),
		mcp.WithString("summary", mcp.Description("Free-text summary")),
		mcp.WithString("bands", mcp.Description("JSON array of source references, e.g. '[1,3]'")),
		mcp.WithString("domain", mcp.Description("Dot-notation domain path; 'meta' is always loaded at boot")),
		mcp.WithString("status", mcp.Description("Node status (advisory vocabulary)")),
		mcp.WithString("kai_note", mcp.Description("Free-text annotation")),
		mcp.WithString("meta", mcp.Description("JSON object of extra attributes, deep-merged on update")),
	)
}

func putNodeHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bands, err := application.ParseBands(req.GetString("bands", ""))
		if err != nil {
			return toolError(err)
		}
		meta, err := application.ParseMeta(req.GetString("meta", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewPutNodeCommand(store, domain.NodeSpec{
			ID:      req.GetString("id", ""),
			Type:    req.GetString("type", ""),
			Summary: req.GetString("summary", ""),
			Bands:   bands,
			Domain:  req.GetString("domain", ""),
			Status:  req.GetString("status", ""),
			KaiNote: req.GetString("kai_note", ""),
			Meta:    meta,
		})
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_put_edge ---

func putEdgeTool() mcp.Tool {
	return mcp.NewTool("kg_put_edge",
		mcp.WithDescription("Upsert an edge; weight and note are fully replaced. Both endpoints must exist. relation: "+strings.Join(domain.Relations, "|")+"."),
		mcp.WithString("source_id", mcp.Description("Source node ID"), mcp.Required()),
		mcp.WithString("target_id", mcp.Description("Target node ID"), mcp.Required()),
		mcp.WithString("relation", mcp.Description("Relation label (advisory vocabulary)"), mcp.Required()),
		mcp.WithNumber("weight", mcp.Description("Salience weight (default 1.0)")),
		mcp.WithString("note", mcp.Description("Free-text note")),
	)
}

func putEdgeHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPutEdgeCommand(store, domain.EdgeSpec{
			SourceID: req.GetString("source_id", ""),
			TargetID: req.GetString("target_id", ""),
			Relation: req.GetString("relation", ""),
			Weight:   req.GetFloat("weight", 1.0),
			Note:     req.GetString("note", ""),
		})
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_delete_node ---

func deleteNodeTool() mcp.Tool {
	return mcp.NewTool("kg_delete_node",
		mcp.WithDescription("Delete a node and every edge touching it. Destructive."),
		mcp.WithString("id", mcp.Description("Node ID"), mcp.Required()),
	)
}

func deleteNodeHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteNodeCommand(store, req.GetString("id", "")).Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_delete_edge ---

func deleteEdgeTool() mcp.Tool {
	return mcp.NewTool("kg_delete_edge",
		mcp.WithDescription("Delete an edge by its exact (source, target, relation) key."),
		mcp.WithString("source_id", mcp.Description("Source node ID"), mcp.Required()),
		mcp.WithString("target_id", mcp.Description("Target node ID"), mcp.Required()),
		mcp.WithString("relation", mcp.Description("Relation label"), mcp.Required()),
	)
}

func deleteEdgeHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteEdgeCommand(store,
			req.GetString("source_id", ""),
			req.GetString("target_id", ""),
			req.GetString("relation", ""),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_state ---

func stateTool() mcp.Tool {
	return mcp.NewTool("kg_state",
		mcp.WithDescription("Set a session-state key. Conventional keys: focus|open_questions|last_session|session_count; free-form keys are accepted."),
		mcp.WithString("key", mcp.Description("State key"), mcp.Required()),
		mcp.WithString("value", mcp.Description("State value"), mcp.Required()),
	)
}

func stateHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetStateCommand(store,
			req.GetString("key", ""),
			req.GetString("value", ""),
		)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_bulk ---

func bulkTool() mcp.Tool {
	return mcp.NewTool("kg_bulk",
		mcp.WithDescription("Batch upsert in one transaction. operations: JSON {nodes:[{id,type,summary,bands,domain,status,kai_note,meta}],edges:[{source_id,target_id,relation,weight,note}]}. Node entries merge like kg_put_node."),
		mcp.WithString("operations", mcp.Description("JSON batch payload"), mcp.Required()),
	)
}

func bulkHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		batch, err := application.ParseBulkBatch(req.GetString("operations", ""))
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewBulkCommand(store, *batch).Execute(ctx)
		return toolResult(result, err)
	}
}

// --- kg_bulk_set_domain ---

func bulkSetDomainTool() mcp.Tool {
	return mcp.NewTool("kg_bulk_set_domain",
		mcp.WithDescription("Set the domain on multiple nodes at once. Missing ids are silently skipped."),
		mcp.WithString("domain", mcp.Description("Domain to assign"), mcp.Required()),
		mcp.WithString("node_ids", mcp.Description("JSON array of node IDs"), mcp.Required()),
	)
}

func bulkSetDomainHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := application.ParseNodeIDs(req.GetString("node_ids", ""))
		if err != nil {
			return toolError(err)
		}
		cmd := commands.NewBulkSetDomainCommand(store, req.GetString("domain", ""), ids)
		result, err := cmd.Execute(ctx)
		return toolResult(result, err)
	}
}
