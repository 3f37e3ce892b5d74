package commands

import (
	"context"
	"testing"

	"kgraph/internal/application"
)

func TestLoadDomainCommand_Validate(t *testing.T) {
	if err := NewLoadDomainCommand(newFakeGraph(), "", DepthFull).Validate(); err == nil {
		t.Error("expected error for empty name")
	}
	if err := NewLoadDomainCommand(newFakeGraph(), "infra", "deep").Validate(); err == nil {
		t.Error("expected error for unknown depth")
	}
	// Empty depth defaults to full.
	cmd := NewLoadDomainCommand(newFakeGraph(), "infra", "")
	if cmd.Depth != DepthFull {
		t.Errorf("expected default depth %q, got %q", DepthFull, cmd.Depth)
	}
}

func TestLoadDomainCommand_FullDepth(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("n1", "infra")
	graph.addNode("n2", "infra.network")
	graph.addNode("out", "research")
	graph.addEdge("n1", "contains", "n2")
	graph.addEdge("n1", "extends", "out")

	result, err := NewLoadDomainCommand(graph, "infra", DepthFull).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.NodeCount != 2 {
		t.Errorf("expected 2 nodes, got %d", result.NodeCount)
	}
	nodes, ok := result.Nodes.([]application.NodeWire)
	if !ok {
		t.Fatalf("expected full node projections, got %T", result.Nodes)
	}
	for _, n := range nodes {
		if n.ID == "out" {
			t.Error("out-of-scope node loaded")
		}
	}

	// The edge to the out-of-scope node is excluded.
	if result.EdgeCount != 1 {
		t.Errorf("expected 1 in-scope edge, got %d", result.EdgeCount)
	}
	if len(result.SubDomains) != 1 || result.SubDomains[0].Name != "infra.network" {
		t.Errorf("unexpected sub-domains: %+v", result.SubDomains)
	}
}

func TestLoadDomainCommand_IndexDepth(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("n1", "infra")
	graph.addNode("n2", "infra")
	graph.addEdge("n1", "contains", "n2")

	result, err := NewLoadDomainCommand(graph, "infra", DepthIndex).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, ok := result.Nodes.([]application.NodeIndexWire); !ok {
		t.Fatalf("expected index projections, got %T", result.Nodes)
	}
	if result.NodeCount != 2 {
		t.Errorf("expected 2 nodes, got %d", result.NodeCount)
	}
	// Index depth never loads edges.
	if result.EdgeCount != 0 || len(result.Edges) != 0 {
		t.Errorf("index depth should carry no edges, got %d", result.EdgeCount)
	}
}

func TestLoadDomainCommand_EmptyDomain(t *testing.T) {
	result, err := NewLoadDomainCommand(newFakeGraph(), "void", DepthFull).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.NodeCount != 0 || result.EdgeCount != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	// Empty collections stay non-nil for the wire shape.
	if result.Edges == nil || result.SubDomains == nil {
		t.Error("empty collections must not be nil")
	}
}
