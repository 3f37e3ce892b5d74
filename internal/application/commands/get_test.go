package commands

import (
	"context"
	"errors"
	"testing"

	"kgraph/internal/application"
)

func TestNeighborhoodCommand_MissingSeedIsNotFound(t *testing.T) {
	graph := newFakeGraph()

	_, err := NewNeighborhoodCommand(graph, "ghost", 1).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error for missing seed")
	}
	var notFound *application.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.Code() != "not_found:ghost" {
		t.Errorf("unexpected code %q", notFound.Code())
	}
}

func TestNeighborhoodCommand_ZeroHops(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("a", "")
	graph.addNode("b", "")
	graph.addEdge("a", "requires", "b")

	result, err := NewNeighborhoodCommand(graph, "a", 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Node.ID != "a" {
		t.Errorf("unexpected seed: %s", result.Node.ID)
	}
	if len(result.Edges) != 0 || len(result.Neighbors) != 0 {
		t.Errorf("expected empty neighborhood at 0 hops, got %d edges, %d neighbors",
			len(result.Edges), len(result.Neighbors))
	}
}

func TestNeighborhoodCommand_OneHop(t *testing.T) {
	graph := newFakeGraph()
	for _, id := range []string{"a", "b", "c", "far"} {
		graph.addNode(id, "")
	}
	graph.addEdge("a", "requires", "b")
	graph.addEdge("c", "extends", "a")
	graph.addEdge("b", "contains", "far")

	result, err := NewNeighborhoodCommand(graph, "a", 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Neighbors) != 2 {
		t.Errorf("expected 2 neighbors, got %d", len(result.Neighbors))
	}
	if _, ok := result.Neighbors["a"]; ok {
		t.Error("seed should not be listed as its own neighbor")
	}
	if _, ok := result.Neighbors["far"]; ok {
		t.Error("far is 2 hops out")
	}
	if len(result.Edges) != 2 {
		t.Errorf("expected 2 edges, got %d", len(result.Edges))
	}
}

func TestNeighborhoodCommand_HopsClampedToMax(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("a", "")

	cmd := NewNeighborhoodCommand(graph, "a", 99)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// A long chain confirms the reach stops at the clamp.
	chain := newFakeGraph()
	ids := []string{"n0", "n1", "n2", "n3", "n4", "n5"}
	for _, id := range ids {
		chain.addNode(id, "")
	}
	for i := 0; i < len(ids)-1; i++ {
		chain.addEdge(ids[i], "requires", ids[i+1])
	}

	result, err := NewNeighborhoodCommand(chain, "n0", 99).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, ok := result.Neighbors["n3"]; !ok {
		t.Error("n3 is within the 3-hop clamp")
	}
	if _, ok := result.Neighbors["n4"]; ok {
		t.Error("n4 is beyond the 3-hop clamp")
	}
}
