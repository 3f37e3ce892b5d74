package commands

import (
	"context"
	"fmt"
	"strconv"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// bootDocLimit caps the document index returned by the boot payload.
const bootDocLimit = 20

// BootResult is the lean session-init payload: session state, the
// domain index, the always-resident meta nodes, edge count and the
// most recent document index entries.
type BootResult struct {
	State     map[string]string               `json:"state"`
	Domains   []application.DomainWire        `json:"domains"`
	MetaNodes []application.NodeWire          `json:"meta_nodes"`
	EdgeCount int                             `json:"edge_count"`
	Docs      []application.DocumentIndexWire `json:"docs"`
	Edges     []application.EdgeWire          `json:"edges,omitempty"`
}

// BootCommand assembles the boot payload and increments the persisted
// session counter as a side effect of every invocation.
type BootCommand struct {
	graph        ports.GraphRepository
	state        ports.StateRepository
	docs         ports.DocumentRepository
	IncludeEdges bool
}

func NewBootCommand(graph ports.GraphRepository, state ports.StateRepository, docs ports.DocumentRepository) *BootCommand {
	return &BootCommand{graph: graph, state: state, docs: docs}
}

func (c *BootCommand) Execute(ctx context.Context) (*BootResult, error) {
	state, err := c.state.State()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if state == nil {
		state = map[string]string{}
	}

	summary, err := c.graph.DomainSummary()
	if err != nil {
		return nil, fmt.Errorf("loading domain summary: %w", err)
	}
	domains := make([]application.DomainWire, 0, len(summary))
	for _, d := range summary {
		domains = append(domains, application.DomainWire{
			Name:        domain.DisplayName(d.Name),
			Count:       d.Count,
			LastUpdated: d.LastUpdated,
		})
	}

	metaNodes, err := c.graph.MetaNodes()
	if err != nil {
		return nil, fmt.Errorf("loading meta nodes: %w", err)
	}

	edgeCount, err := c.graph.EdgeCount()
	if err != nil {
		return nil, fmt.Errorf("counting edges: %w", err)
	}

	docs, err := c.docs.RecentDocuments(bootDocLimit)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	result := &BootResult{
		State:     state,
		Domains:   domains,
		MetaNodes: application.WireNodes(metaNodes),
		EdgeCount: edgeCount,
		Docs:      application.WireDocumentIndexes(docs),
	}

	if c.IncludeEdges {
		edges, err := c.graph.AllEdges()
		if err != nil {
			return nil, fmt.Errorf("loading edges: %w", err)
		}
		result.Edges = application.WireEdges(edges)
	}

	count, _ := strconv.Atoi(state["session_count"])
	if err := c.state.SetState("session_count", strconv.Itoa(count+1)); err != nil {
		return nil, fmt.Errorf("incrementing session count: %w", err)
	}

	return result, nil
}
