package sqlite

import (
	"strings"

	"kgraph/internal/domain"
)

const edgeColumns = "source_id, target_id, relation, weight, note, created_at"

func scanEdge(r rowScanner) (domain.Edge, error) {
	var e domain.Edge
	err := r.Scan(&e.SourceID, &e.TargetID, &e.Relation, &e.Weight, &e.Note, &e.CreatedAt)
	return e, err
}

func collectEdges(q querier, query string, args ...any) ([]domain.Edge, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []domain.Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// UpsertEdge replaces-or-inserts by the composite (source, target,
// relation) key; weight, note and created_at are always written in
// full. Foreign keys reject edges whose endpoints do not exist.
func (s *Store) UpsertEdge(spec domain.EdgeSpec) error {
	return upsertEdge(s.db, spec)
}

func upsertEdge(q querier, spec domain.EdgeSpec) error {
	_, err := q.Exec(`
		INSERT OR REPLACE INTO edges (source_id, target_id, relation, weight, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, spec.SourceID, spec.TargetID, spec.Relation, spec.Weight, spec.Note, nowUnix())
	return err
}

// DeleteEdge removes by exact composite key; absent edges are a no-op.
func (s *Store) DeleteEdge(sourceID, targetID, relation string) error {
	_, err := s.db.Exec(
		`DELETE FROM edges WHERE source_id = ? AND target_id = ? AND relation = ?`,
		sourceID, targetID, relation,
	)
	return err
}

// EdgesTouching returns every edge incident to id, in either
// direction, optionally restricted to one relation.
func (s *Store) EdgesTouching(id, relation string) ([]domain.Edge, error) {
	query := `SELECT ` + edgeColumns + ` FROM edges WHERE (source_id = ? OR target_id = ?)`
	args := []any{id, id}
	if relation != "" {
		query += ` AND relation = ?`
		args = append(args, relation)
	}
	return collectEdges(s.db, query, args...)
}

// EdgesWithin returns the edges whose both endpoints lie inside the
// given node set; edges crossing the boundary are excluded.
func (s *Store) EdgesWithin(ids []string) ([]domain.Edge, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids)*2)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, args...)
	return collectEdges(s.db, `
		SELECT `+edgeColumns+` FROM edges
		WHERE source_id IN (`+placeholders+`) AND target_id IN (`+placeholders+`)
	`, args...)
}

// AllEdges returns every edge in the store.
func (s *Store) AllEdges() ([]domain.Edge, error) {
	return collectEdges(s.db, `SELECT `+edgeColumns+` FROM edges`)
}

// EdgeCount returns the total number of edges.
func (s *Store) EdgeCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM edges`).Scan(&count)
	return count, err
}
