package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/ports"
)

// DeleteNodeResult confirms a node deletion.
type DeleteNodeResult struct {
	Op string `json:"op"`
	ID string `json:"id"`
}

// DeleteNodeCommand removes a node; the store cascades to every edge
// touching it. Deleting a nonexistent id is a no-op success.
type DeleteNodeCommand struct {
	graph ports.GraphRepository
	ID    string
}

func NewDeleteNodeCommand(graph ports.GraphRepository, id string) *DeleteNodeCommand {
	return &DeleteNodeCommand{graph: graph, ID: id}
}

func (c *DeleteNodeCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "node ID is required"}
	}
	return nil
}

func (c *DeleteNodeCommand) Execute(ctx context.Context) (*DeleteNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.graph.DeleteNode(c.ID); err != nil {
		return nil, fmt.Errorf("deleting node %s: %w", c.ID, err)
	}
	return &DeleteNodeResult{Op: "deleted", ID: c.ID}, nil
}

// DeleteEdgeResult confirms an edge deletion.
type DeleteEdgeResult struct {
	Op string `json:"op"`
}

// DeleteEdgeCommand removes an edge by its exact composite key; absent
// edges are a no-op.
type DeleteEdgeCommand struct {
	graph    ports.GraphRepository
	SourceID string
	TargetID string
	Relation string
}

func NewDeleteEdgeCommand(graph ports.GraphRepository, sourceID, targetID, relation string) *DeleteEdgeCommand {
	return &DeleteEdgeCommand{graph: graph, SourceID: sourceID, TargetID: targetID, Relation: relation}
}

func (c *DeleteEdgeCommand) Validate() error {
	switch {
	case c.SourceID == "":
		return &application.ValidationError{Field: "source_id", Message: "source node ID is required"}
	case c.TargetID == "":
		return &application.ValidationError{Field: "target_id", Message: "target node ID is required"}
	case c.Relation == "":
		return &application.ValidationError{Field: "relation", Message: "relation is required"}
	}
	return nil
}

func (c *DeleteEdgeCommand) Execute(ctx context.Context) (*DeleteEdgeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.graph.DeleteEdge(c.SourceID, c.TargetID, c.Relation); err != nil {
		return nil, fmt.Errorf("deleting edge %s-%s->%s: %w", c.SourceID, c.Relation, c.TargetID, err)
	}
	return &DeleteEdgeResult{Op: "edge_deleted"}, nil
}
