package commands

import (
	"kgraph/internal/application"
	"kgraph/internal/domain"
)

// dedupeEdges collapses an encounter-ordered edge list to unique
// (source, relation, target) triples, keeping the first occurrence.
func dedupeEdges(edges []domain.Edge) []application.EdgeWire {
	seen := make(map[[3]string]struct{}, len(edges))
	out := make([]application.EdgeWire, 0, len(edges))
	for _, e := range edges {
		key := [3]string{e.SourceID, e.Relation, e.TargetID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, application.WireEdge(e))
	}
	return out
}

// opposite returns the endpoint of e that is not id. Edges are
// traversed undirected, so the frontier node may be either endpoint.
func opposite(e domain.Edge, id string) string {
	if e.SourceID == id {
		return e.TargetID
	}
	return e.SourceID
}
