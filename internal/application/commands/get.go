package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

const maxNeighborhoodHops = 3

// NeighborhoodResult is a seed node with its bounded neighborhood.
type NeighborhoodResult struct {
	Node      application.NodeWire            `json:"node"`
	Edges     []application.EdgeWire          `json:"edges"`
	Neighbors map[string]application.NodeWire `json:"neighbors"`
}

// NeighborhoodCommand expands a bounded undirected neighborhood around
// a seed node: exactly Hops breadth-first rounds, every encountered
// edge recorded, edge set deduplicated by triple.
type NeighborhoodCommand struct {
	graph ports.GraphRepository
	ID    string
	Hops  int
}

func NewNeighborhoodCommand(graph ports.GraphRepository, id string, hops int) *NeighborhoodCommand {
	return &NeighborhoodCommand{graph: graph, ID: id, Hops: hops}
}

func (c *NeighborhoodCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "node ID is required"}
	}
	return nil
}

func (c *NeighborhoodCommand) Execute(ctx context.Context) (*NeighborhoodResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	seed, err := c.graph.GetNode(c.ID)
	if err != nil {
		return nil, fmt.Errorf("loading node %s: %w", c.ID, err)
	}
	if seed == nil {
		return nil, application.NewNodeNotFound(c.ID)
	}

	hops := c.Hops
	if hops < 0 {
		hops = 0
	}
	if hops > maxNeighborhoodHops {
		hops = maxNeighborhoodHops
	}

	visited := map[string]struct{}{c.ID: {}}
	frontier := []string{c.ID}
	neighborIDs := make(map[string]struct{})
	var collected []domain.Edge

	for hop := 0; hop < hops; hop++ {
		discovered := make(map[string]struct{})
		for _, nid := range frontier {
			edges, err := c.graph.EdgesTouching(nid, "")
			if err != nil {
				return nil, fmt.Errorf("expanding %s: %w", nid, err)
			}
			for _, e := range edges {
				collected = append(collected, e)
				other := opposite(e, nid)
				if _, ok := visited[other]; !ok {
					discovered[other] = struct{}{}
				}
			}
		}
		frontier = frontier[:0]
		for id := range discovered {
			visited[id] = struct{}{}
			neighborIDs[id] = struct{}{}
			frontier = append(frontier, id)
		}
	}

	neighbors := make(map[string]application.NodeWire, len(neighborIDs))
	for id := range neighborIDs {
		node, err := c.graph.GetNode(id)
		if err != nil {
			return nil, fmt.Errorf("loading neighbor %s: %w", id, err)
		}
		if node != nil {
			neighbors[id] = application.WireNode(node)
		}
	}

	return &NeighborhoodResult{
		Node:      application.WireNode(seed),
		Edges:     dedupeEdges(collected),
		Neighbors: neighbors,
	}, nil
}
