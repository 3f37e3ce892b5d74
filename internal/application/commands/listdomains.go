package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// ListDomainsResult is the full domain tree with counts and freshness.
type ListDomainsResult struct {
	Domains []application.DomainTreeWire `json:"domains"`
}

// ListDomainsCommand projects the flat domain attribute into root
// buckets with folded sub-domains.
type ListDomainsCommand struct {
	graph ports.GraphRepository
}

func NewListDomainsCommand(graph ports.GraphRepository) *ListDomainsCommand {
	return &ListDomainsCommand{graph: graph}
}

func (c *ListDomainsCommand) Execute(ctx context.Context) (*ListDomainsResult, error) {
	rows, err := c.graph.DomainList()
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	tree := domain.BuildDomainTree(rows)
	out := make([]application.DomainTreeWire, 0, len(tree))
	for _, root := range tree {
		subs := make([]application.DomainWire, 0, len(root.SubDomains))
		for _, s := range root.SubDomains {
			subs = append(subs, application.DomainWire{Name: s.Name, Count: s.Count, LastUpdated: s.LastUpdated})
		}
		out = append(out, application.DomainTreeWire{
			Name:        root.Name,
			Count:       root.Count,
			LastUpdated: root.LastUpdated,
			SubDomains:  subs,
		})
	}

	return &ListDomainsResult{Domains: out}, nil
}
