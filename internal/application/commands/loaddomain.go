package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/ports"
)

// Load depths. Index returns identity-only projections; full returns
// complete node records plus the edges whose both endpoints lie inside
// the loaded scope.
const (
	DepthFull  = "full"
	DepthIndex = "index"
)

// LoadDomainResult is a domain pulled into context. Nodes holds full
// or index projections depending on the requested depth.
type LoadDomainResult struct {
	Domain     string                      `json:"domain"`
	NodeCount  int                         `json:"node_count"`
	EdgeCount  int                         `json:"edge_count"`
	Nodes      any                         `json:"nodes"`
	Edges      []application.EdgeWire      `json:"edges"`
	SubDomains []application.SubDomainWire `json:"sub_domains"`
}

// LoadDomainCommand selects every node whose domain equals Name or is
// a dot-boundary descendant of it ("a" covers "a.b", never "ab").
type LoadDomainCommand struct {
	graph ports.GraphRepository
	Name  string
	Depth string
}

func NewLoadDomainCommand(graph ports.GraphRepository, name, depth string) *LoadDomainCommand {
	if depth == "" {
		depth = DepthFull
	}
	return &LoadDomainCommand{graph: graph, Name: name, Depth: depth}
}

func (c *LoadDomainCommand) Validate() error {
	if c.Name == "" {
		return &application.ValidationError{Field: "name", Message: "domain name is required"}
	}
	if c.Depth != DepthFull && c.Depth != DepthIndex {
		return &application.ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("expected %q or %q, got %q", DepthFull, DepthIndex, c.Depth),
		}
	}
	return nil
}

func (c *LoadDomainCommand) Execute(ctx context.Context) (*LoadDomainResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &LoadDomainResult{
		Domain: c.Name,
		Edges:  []application.EdgeWire{},
	}

	if c.Depth == DepthIndex {
		nodes, err := c.graph.NodeIndexByDomain(c.Name)
		if err != nil {
			return nil, fmt.Errorf("loading domain %s: %w", c.Name, err)
		}
		result.Nodes = application.WireNodeIndexes(nodes)
		result.NodeCount = len(nodes)
	} else {
		nodes, err := c.graph.NodesByDomain(c.Name)
		if err != nil {
			return nil, fmt.Errorf("loading domain %s: %w", c.Name, err)
		}
		result.Nodes = application.WireNodes(nodes)
		result.NodeCount = len(nodes)

		if len(nodes) > 0 {
			ids := make([]string, 0, len(nodes))
			for _, n := range nodes {
				ids = append(ids, n.ID)
			}
			edges, err := c.graph.EdgesWithin(ids)
			if err != nil {
				return nil, fmt.Errorf("loading edges for %s: %w", c.Name, err)
			}
			result.Edges = application.WireEdges(edges)
		}
	}
	result.EdgeCount = len(result.Edges)

	subs, err := c.graph.SubDomains(c.Name)
	if err != nil {
		return nil, fmt.Errorf("listing sub-domains of %s: %w", c.Name, err)
	}
	result.SubDomains = make([]application.SubDomainWire, 0, len(subs))
	for _, s := range subs {
		result.SubDomains = append(result.SubDomains, application.SubDomainWire{Name: s.Name, Count: s.Count})
	}

	return result, nil
}
