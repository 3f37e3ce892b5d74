package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// PutNodeResult reports which upsert branch occurred and the node's
// effective domain afterwards.
type PutNodeResult struct {
	Op     string `json:"op"`
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// PutNodeCommand upserts a node. Creation fills empty defaults; an
// update is a partial merge where only supplied fields change and meta
// is overlaid key by key.
type PutNodeCommand struct {
	graph ports.GraphRepository
	Spec  domain.NodeSpec
}

func NewPutNodeCommand(graph ports.GraphRepository, spec domain.NodeSpec) *PutNodeCommand {
	return &PutNodeCommand{graph: graph, Spec: spec}
}

func (c *PutNodeCommand) Validate() error {
	if c.Spec.ID == "" {
		return &application.ValidationError{Field: "id", Message: "node ID is required"}
	}
	return nil
}

func (c *PutNodeCommand) Execute(ctx context.Context) (*PutNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, effectiveDomain, err := c.graph.UpsertNode(c.Spec)
	if err != nil {
		return nil, fmt.Errorf("upserting node %s: %w", c.Spec.ID, err)
	}

	op := "updated"
	if created {
		op = "created"
	}
	return &PutNodeResult{Op: op, ID: c.Spec.ID, Domain: effectiveDomain}, nil
}
