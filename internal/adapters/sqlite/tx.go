package sqlite

import (
	"fmt"

	"kgraph/internal/domain"
)

// BulkUpsert applies a batch of node and edge upserts in one
// transaction: either every entry commits or none do. Node entries use
// the same partial-merge semantics as single upserts.
func (s *Store) BulkUpsert(nodes []domain.NodeSpec, edges []domain.EdgeSpec) (int, int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	for _, spec := range nodes {
		if _, _, err := upsertNode(tx, spec); err != nil {
			return 0, 0, fmt.Errorf("node %s: %w", spec.ID, err)
		}
	}
	for _, spec := range edges {
		if err := upsertEdge(tx, spec); err != nil {
			return 0, 0, fmt.Errorf("edge %s-%s->%s: %w", spec.SourceID, spec.Relation, spec.TargetID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return len(nodes), len(edges), nil
}
