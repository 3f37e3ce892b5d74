package commands

import (
	"context"
	"testing"
)

func TestTraverseCommand_Validate(t *testing.T) {
	cmd := NewTraverseCommand(newFakeGraph(), "", 2, "")
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for empty start id")
	}
}

func TestTraverseCommand_ZeroHopsReturnsStartOnly(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("a", "")
	graph.addNode("b", "")
	graph.addEdge("a", "requires", "b")

	result, err := NewTraverseCommand(graph, "a", 0, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.NodeCount != 1 {
		t.Errorf("expected only the start node, got %d", result.NodeCount)
	}
	if result.EdgeCount != 0 {
		t.Errorf("expected no edges at hop 0, got %d", result.EdgeCount)
	}
	if _, ok := result.Nodes["a"]; !ok {
		t.Error("start node missing from node set")
	}
}

func TestTraverseCommand_CollectsSubgraph(t *testing.T) {
	// a - b - c - d, plus a side edge b - e
	graph := newFakeGraph()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		graph.addNode(id, "")
	}
	graph.addEdge("a", "requires", "b")
	graph.addEdge("b", "requires", "c")
	graph.addEdge("c", "requires", "d")
	graph.addEdge("b", "extends", "e")

	result, err := NewTraverseCommand(graph, "a", 2, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Two hops from a: a, b, c, e. d is three hops out.
	if result.NodeCount != 4 {
		t.Errorf("expected 4 nodes, got %d: %v", result.NodeCount, result.Nodes)
	}
	if _, ok := result.Nodes["d"]; ok {
		t.Error("d should be beyond the hop limit")
	}
	// Edges seen while expanding a and b: a-b, b-c, b-e.
	if result.EdgeCount != 3 {
		t.Errorf("expected 3 edges, got %d", result.EdgeCount)
	}
}

func TestTraverseCommand_RelationFilter(t *testing.T) {
	graph := newFakeGraph()
	for _, id := range []string{"a", "b", "c"} {
		graph.addNode(id, "")
	}
	graph.addEdge("a", "requires", "b")
	graph.addEdge("a", "extends", "c")

	result, err := NewTraverseCommand(graph, "a", 2, "requires").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, ok := result.Nodes["c"]; ok {
		t.Error("filtered relation should not be followed")
	}
	if result.NodeCount != 2 {
		t.Errorf("expected a and b, got %d nodes", result.NodeCount)
	}
	for _, e := range result.Edges {
		if e.Relation != "requires" {
			t.Errorf("unexpected relation in result: %s", e.Relation)
		}
	}
}

func TestTraverseCommand_EdgesDeduplicated(t *testing.T) {
	// The a-b edge is visible from both endpoints and must appear once.
	graph := newFakeGraph()
	graph.addNode("a", "")
	graph.addNode("b", "")
	graph.addEdge("a", "requires", "b")

	result, err := NewTraverseCommand(graph, "a", 3, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.EdgeCount != 1 {
		t.Errorf("expected deduplicated edge set of 1, got %d", result.EdgeCount)
	}
}

func TestTraverseCommand_MissingStartYieldsEmptyResult(t *testing.T) {
	graph := newFakeGraph()

	result, err := NewTraverseCommand(graph, "ghost", 2, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.NodeCount != 0 || result.EdgeCount != 0 {
		t.Errorf("expected empty result, got %d nodes, %d edges", result.NodeCount, result.EdgeCount)
	}
}

func TestTraverseCommand_MissingIntermediateStillTraversed(t *testing.T) {
	// b has edges but no stored row: it is skipped from the node set
	// while traversal continues through it.
	graph := newFakeGraph()
	graph.addNode("a", "")
	graph.addNode("c", "")
	graph.addEdge("a", "requires", "b")
	graph.addEdge("b", "requires", "c")

	result, err := NewTraverseCommand(graph, "a", 2, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, ok := result.Nodes["b"]; ok {
		t.Error("rowless node should not be in the node set")
	}
	if _, ok := result.Nodes["c"]; !ok {
		t.Error("traversal should continue through the rowless node")
	}
}

func TestTraverseCommand_NegativeHopsClamped(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("a", "")

	result, err := NewTraverseCommand(graph, "a", -5, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Hops != 0 {
		t.Errorf("expected hops clamped to 0, got %d", result.Hops)
	}
}
