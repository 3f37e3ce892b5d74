package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/ports"
)

const defaultSearchLimit = 10

// SearchNodesResult is a substring search over nodes.
type SearchNodesResult struct {
	Query string                 `json:"q"`
	Count int                    `json:"count"`
	Nodes []application.NodeWire `json:"nodes"`
}

// SearchNodesCommand matches the query against id, summary, kai_note
// and the serialized meta payload.
type SearchNodesCommand struct {
	graph ports.GraphRepository
	Query string
	Limit int
}

func NewSearchNodesCommand(graph ports.GraphRepository, query string, limit int) *SearchNodesCommand {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return &SearchNodesCommand{graph: graph, Query: query, Limit: limit}
}

func (c *SearchNodesCommand) Validate() error {
	if c.Query == "" {
		return &application.ValidationError{Field: "q", Message: "query is required"}
	}
	return nil
}

func (c *SearchNodesCommand) Execute(ctx context.Context) (*SearchNodesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	nodes, err := c.graph.SearchNodes(c.Query, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("searching nodes: %w", err)
	}

	return &SearchNodesResult{
		Query: c.Query,
		Count: len(nodes),
		Nodes: application.WireNodes(nodes),
	}, nil
}
