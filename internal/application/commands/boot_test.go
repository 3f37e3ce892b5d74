package commands

import (
	"context"
	"testing"

	"kgraph/internal/domain"
)

func TestBootCommand_AssemblesPayload(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("identity", domain.MetaDomain)
	graph.addNode("wireguard", "infra.network")
	graph.addNode("loose", "")
	graph.addEdge("identity", "grounds", "wireguard")

	state := newFakeState()
	state.SetState("focus", "networking")
	state.SetState("session_count", "3")

	docs := &fakeDocs{docs: []domain.DocumentIndex{
		{ID: "abcd1234", Title: "session log", SessionNumber: 3, Length: 40},
	}}

	result, err := NewBootCommand(graph, state, docs).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.State["focus"] != "networking" {
		t.Errorf("state not included: %v", result.State)
	}
	if len(result.MetaNodes) != 1 || result.MetaNodes[0].ID != "identity" {
		t.Errorf("unexpected meta nodes: %+v", result.MetaNodes)
	}
	if result.EdgeCount != 1 {
		t.Errorf("expected edge count 1, got %d", result.EdgeCount)
	}
	if len(result.Docs) != 1 || result.Docs[0].ID != "abcd1234" {
		t.Errorf("unexpected docs: %+v", result.Docs)
	}
	if len(result.Edges) != 0 {
		t.Errorf("edges should be omitted by default, got %d", len(result.Edges))
	}

	// Domain index uses the display name for the empty domain.
	var sawUnassigned bool
	for _, d := range result.Domains {
		if d.Name == domain.UnassignedDomain {
			sawUnassigned = true
		}
		if d.Name == "" {
			t.Error("empty domain name leaked into the index")
		}
	}
	if !sawUnassigned {
		t.Errorf("expected %q bucket in domains: %+v", domain.UnassignedDomain, result.Domains)
	}
}

func TestBootCommand_IncrementsSessionCount(t *testing.T) {
	state := newFakeState()
	state.SetState("session_count", "3")

	cmd := NewBootCommand(newFakeGraph(), state, &fakeDocs{})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// The payload reports the pre-increment value.
	if result.State["session_count"] != "3" {
		t.Errorf("payload session_count = %q, want 3", result.State["session_count"])
	}
	stored, _ := state.State()
	if stored["session_count"] != "4" {
		t.Errorf("stored session_count = %q, want 4", stored["session_count"])
	}

	// A missing counter starts from zero.
	fresh := newFakeState()
	if _, err := NewBootCommand(newFakeGraph(), fresh, &fakeDocs{}).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	stored, _ = fresh.State()
	if stored["session_count"] != "1" {
		t.Errorf("stored session_count = %q, want 1", stored["session_count"])
	}
}

func TestBootCommand_IncludeEdges(t *testing.T) {
	graph := newFakeGraph()
	graph.addNode("a", "")
	graph.addNode("b", "")
	graph.addEdge("a", "requires", "b")

	cmd := NewBootCommand(graph, newFakeState(), &fakeDocs{})
	cmd.IncludeEdges = true
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Edges) != 1 {
		t.Errorf("expected full edge list, got %d", len(result.Edges))
	}
}
