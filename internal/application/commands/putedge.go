package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// PutEdgeResult confirms an edge upsert.
type PutEdgeResult struct {
	Op       string `json:"op"`
	Source   string `json:"src"`
	Relation string `json:"rel"`
	Target   string `json:"tgt"`
}

// PutEdgeCommand replaces-or-inserts an edge by its composite key.
// Unlike node upserts there is no merge: weight and note are always
// written in full. Missing endpoints are a referential-integrity
// failure surfaced by the store.
type PutEdgeCommand struct {
	graph ports.GraphRepository
	Spec  domain.EdgeSpec
}

func NewPutEdgeCommand(graph ports.GraphRepository, spec domain.EdgeSpec) *PutEdgeCommand {
	return &PutEdgeCommand{graph: graph, Spec: spec}
}

func (c *PutEdgeCommand) Validate() error {
	switch {
	case c.Spec.SourceID == "":
		return &application.ValidationError{Field: "source_id", Message: "source node ID is required"}
	case c.Spec.TargetID == "":
		return &application.ValidationError{Field: "target_id", Message: "target node ID is required"}
	case c.Spec.Relation == "":
		return &application.ValidationError{Field: "relation", Message: "relation is required"}
	}
	return nil
}

func (c *PutEdgeCommand) Execute(ctx context.Context) (*PutEdgeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.graph.UpsertEdge(c.Spec); err != nil {
		return nil, fmt.Errorf("upserting edge %s-%s->%s: %w",
			c.Spec.SourceID, c.Spec.Relation, c.Spec.TargetID, err)
	}

	return &PutEdgeResult{
		Op:       "edge_set",
		Source:   c.Spec.SourceID,
		Relation: c.Spec.Relation,
		Target:   c.Spec.TargetID,
	}, nil
}
