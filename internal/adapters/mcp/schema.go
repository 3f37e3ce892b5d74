package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kgraph/internal/domain"
)

const schemaURI = "kg://schema"

// RegisterSchemaResource exposes the wire-format reference: the
// abbreviated field names and the advisory vocabularies.
func RegisterSchemaResource(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(schemaURI, "schema",
			mcp.WithResourceDescription("Wire format reference and advisory vocabularies"),
			mcp.WithMIMEType("application/json"),
		),
		schemaHandler,
	)
}

func schemaHandler(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	b, err := json.MarshalIndent(map[string]any{
		"node": map[string]string{
			"id": "slug", "t": "type", "s": "summary", "b": "bands[]",
			"d": "domain", "st": "status", "k": "kai_note", "m": "meta{}",
		},
		"edge": map[string]string{
			"src": "source_id", "rel": "relation", "tgt": "target_id",
			"w": "weight", "n": "note",
		},
		"doc": map[string]string{
			"id": "token8", "title": "str", "content": "str",
			"session": "int", "node_ids": "[node_id,...]",
		},
		"types":    strings.Join(domain.NodeTypes, "|"),
		"statuses": strings.Join(domain.NodeStatuses, "|"),
		"rels":     strings.Join(domain.Relations, "|"),
		"domains":  "dot-notation hierarchy, e.g. 'infra', 'research.papers'; '" + domain.MetaDomain + "' is always loaded at boot",
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      schemaURI,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}
