package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/domain"
	"kgraph/internal/ports"
)

// TraverseResult is the visited subgraph of a filtered BFS walk.
type TraverseResult struct {
	Start     string                          `json:"start"`
	Hops      int                             `json:"hops"`
	NodeCount int                             `json:"node_count"`
	EdgeCount int                             `json:"edge_count"`
	Nodes     map[string]application.NodeWire `json:"nodes"`
	Edges     []application.EdgeWire          `json:"edges"`
}

// TraverseCommand runs a breadth-first search over undirected
// adjacency, optionally restricted to a single relation. A node id
// without a stored row is skipped from the node set but traversal
// still continues through its edges; a missing start node yields an
// empty result, not an error.
type TraverseCommand struct {
	graph          ports.GraphRepository
	StartID        string
	MaxHops        int
	RelationFilter string
}

func NewTraverseCommand(graph ports.GraphRepository, startID string, maxHops int, relationFilter string) *TraverseCommand {
	return &TraverseCommand{graph: graph, StartID: startID, MaxHops: maxHops, RelationFilter: relationFilter}
}

func (c *TraverseCommand) Validate() error {
	if c.StartID == "" {
		return &application.ValidationError{Field: "start_id", Message: "start node ID is required"}
	}
	return nil
}

func (c *TraverseCommand) Execute(ctx context.Context) (*TraverseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	maxHops := c.MaxHops
	if maxHops < 0 {
		maxHops = 0
	}

	visited := make(map[string]struct{})
	nodes := make(map[string]application.NodeWire)
	frontier := map[string]struct{}{c.StartID: {}}
	var collected []domain.Edge

	for hop := 0; hop <= maxHops; hop++ {
		discovered := make(map[string]struct{})
		for nid := range frontier {
			if _, ok := visited[nid]; ok {
				continue
			}
			visited[nid] = struct{}{}

			node, err := c.graph.GetNode(nid)
			if err != nil {
				return nil, fmt.Errorf("loading node %s: %w", nid, err)
			}
			if node != nil {
				nodes[nid] = application.WireNode(node)
			}

			if hop == maxHops {
				continue
			}
			edges, err := c.graph.EdgesTouching(nid, c.RelationFilter)
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
		frontier = discovered
	}

	edges := dedupeEdges(collected)
	return &TraverseResult{
		Start:     c.StartID,
		Hops:      maxHops,
		NodeCount: len(nodes),
		EdgeCount: len(edges),
		Nodes:     nodes,
		Edges:     edges,
	}, nil
}
