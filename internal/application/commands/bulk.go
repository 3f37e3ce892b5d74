package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// BulkResult reports how many entities a batch touched.
type BulkResult struct {
	Op    string `json:"op"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
}

// BulkCommand applies a batch of node and edge upserts as a single
// committed transaction. Node entries follow the same partial-merge
// semantics as single upserts, so a batch can safely re-touch existing
// nodes without clearing fields it does not mention.
type BulkCommand struct {
	graph ports.GraphRepository
	Batch application.BulkBatch
}

func NewBulkCommand(graph ports.GraphRepository, batch application.BulkBatch) *BulkCommand {
	return &BulkCommand{graph: graph, Batch: batch}
}

func (c *BulkCommand) Validate() error {
	for i, n := range c.Batch.Nodes {
		if n.ID == "" {
			return &application.ValidationError{
				Field:   "operations",
				Message: fmt.Sprintf("node entry %d has no id", i),
			}
		}
	}
	for i, e := range c.Batch.Edges {
		if e.SourceID == "" || e.TargetID == "" || e.Relation == "" {
			return &application.ValidationError{
				Field:   "operations",
				Message: fmt.Sprintf("edge entry %d needs source_id, target_id and relation", i),
			}
		}
	}
	return nil
}

func (c *BulkCommand) Execute(ctx context.Context) (*BulkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]domain.NodeSpec, 0, len(c.Batch.Nodes))
	for _, n := range c.Batch.Nodes {
		nodes = append(nodes, domain.NodeSpec{
			ID:      n.ID,
			Type:    n.Type,
			Summary: n.Summary,
			Bands:   n.Bands,
			Domain:  n.Domain,
			Status:  n.Status,
			KaiNote: n.KaiNote,
			Meta:    n.Meta,
		})
	}

	edges := make([]domain.EdgeSpec, 0, len(c.Batch.Edges))
	for _, e := range c.Batch.Edges {
		weight := 1.0
		if e.Weight != nil {
			weight = *e.Weight
		}
		edges = append(edges, domain.EdgeSpec{
			SourceID: e.SourceID,
			TargetID: e.TargetID,
			Relation: e.Relation,
			Weight:   weight,
			Note:     e.Note,
		})
	}

	nodeCount, edgeCount, err := c.graph.BulkUpsert(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("applying bulk batch: %w", err)
	}

	return &BulkResult{Op: "bulk", Nodes: nodeCount, Edges: edgeCount}, nil
}

// BulkSetDomainResult confirms a bulk domain reassignment.
type BulkSetDomainResult struct {
	Op     string `json:"op"`
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// BulkSetDomainCommand sets the domain on each listed node
// unconditionally, silently skipping ids that do not exist.
type BulkSetDomainCommand struct {
	graph   ports.GraphRepository
	Domain  string
	NodeIDs []string
}

func NewBulkSetDomainCommand(graph ports.GraphRepository, domainName string, nodeIDs []string) *BulkSetDomainCommand {
	return &BulkSetDomainCommand{graph: graph, Domain: domainName, NodeIDs: nodeIDs}
}

func (c *BulkSetDomainCommand) Execute(ctx context.Context) (*BulkSetDomainResult, error) {
	if err := c.graph.SetDomainBulk(c.Domain, c.NodeIDs); err != nil {
		return nil, fmt.Errorf("reassigning domain %s: %w", c.Domain, err)
	}
	return &BulkSetDomainResult{Op: "bulk_domain_set", Domain: c.Domain, Count: len(c.NodeIDs)}, nil
}
