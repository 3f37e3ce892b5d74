package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kgraph/internal/domain"
)

const nodeColumns = "id, type, summary, bands, domain, status, kai_note, meta, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(r rowScanner) (*domain.Node, error) {
	var n domain.Node
	var bands, meta string
	if err := r.Scan(&n.ID, &n.Type, &n.Summary, &bands, &n.Domain, &n.Status, &n.KaiNote, &meta, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(bands), &n.Bands); err != nil {
		return nil, fmt.Errorf("decoding bands of %s: %w", n.ID, err)
	}
	if err := json.Unmarshal([]byte(meta), &n.Meta); err != nil {
		return nil, fmt.Errorf("decoding meta of %s: %w", n.ID, err)
	}
	return &n, nil
}

func getNode(q querier, id string) (*domain.Node, error) {
	row := q.QueryRow(`SELECT `+nodeColumns+` FROM nodes WHERE id = ?`, id)
	node, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

// GetNode retrieves a node by id, returning (nil, nil) when absent.
func (s *Store) GetNode(id string) (*domain.Node, error) {
	return getNode(s.db, id)
}

// UpsertNode creates the node with empty defaults for omitted fields,
// or partially merges into an existing one: scalar fields only when
// non-empty, bands only when non-empty, meta overlaid key by key.
// Returns whether the create branch ran and the effective domain.
func (s *Store) UpsertNode(spec domain.NodeSpec) (bool, string, error) {
	return upsertNode(s.db, spec)
}

func upsertNode(q querier, spec domain.NodeSpec) (bool, string, error) {
	existing, err := getNode(q, spec.ID)
	if err != nil {
		return false, "", err
	}
	now := nowUnix()

	if existing == nil {
		nodeType := spec.Type
		if nodeType == "" {
			nodeType = domain.DefaultNodeType
		}
		status := spec.Status
		if status == "" {
			status = domain.DefaultNodeStatus
		}
		bands, err := marshalBands(spec.Bands)
		if err != nil {
			return false, "", err
		}
		meta, err := marshalMeta(spec.Meta)
		if err != nil {
			return false, "", err
		}
		_, err = q.Exec(`
			INSERT INTO nodes (id, type, summary, bands, domain, status, kai_note, meta, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, spec.ID, nodeType, spec.Summary, bands, spec.Domain, status, spec.KaiNote, meta, now, now)
		if err != nil {
			return false, "", err
		}
		return true, spec.Domain, nil
	}

	sets := []string{"updated_at = ?"}
	args := []any{now}
	if spec.Type != "" {
		sets = append(sets, "type = ?")
		args = append(args, spec.Type)
	}
	if spec.Summary != "" {
		sets = append(sets, "summary = ?")
		args = append(args, spec.Summary)
	}
	if len(spec.Bands) > 0 {
		bands, err := marshalBands(spec.Bands)
		if err != nil {
			return false, "", err
		}
		sets = append(sets, "bands = ?")
		args = append(args, bands)
	}
	if spec.Domain != "" {
		sets = append(sets, "domain = ?")
		args = append(args, spec.Domain)
	}
	if spec.Status != "" {
		sets = append(sets, "status = ?")
		args = append(args, spec.Status)
	}
	if spec.KaiNote != "" {
		sets = append(sets, "kai_note = ?")
		args = append(args, spec.KaiNote)
	}
	if len(spec.Meta) > 0 {
		merged := existing.Meta
		if merged == nil {
			merged = make(map[string]any, len(spec.Meta))
		}
		for k, v := range spec.Meta {
			merged[k] = v
		}
		meta, err := marshalMeta(merged)
		if err != nil {
			return false, "", err
		}
		sets = append(sets, "meta = ?")
		args = append(args, meta)
	}

	args = append(args, spec.ID)
	if _, err := q.Exec(`UPDATE nodes SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		return false, "", err
	}

	effective := existing.Domain
	if spec.Domain != "" {
		effective = spec.Domain
	}
	return false, effective, nil
}

// DeleteNode removes the node; the FK cascade removes every edge
// touching it. Absent ids are a no-op.
func (s *Store) DeleteNode(id string) error {
	_, err := s.db.Exec(`DELETE FROM nodes WHERE id = ?`, id)
	return err
}

// SetDomainBulk sets the domain on each listed node unconditionally
// within one transaction, silently skipping missing ids.
func (s *Store) SetDomainBulk(domainName string, ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := nowUnix()
	for _, id := range ids {
		if _, err := tx.Exec(`UPDATE nodes SET domain = ?, updated_at = ? WHERE id = ?`, domainName, now, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func marshalBands(bands []int) (string, error) {
	if bands == nil {
		bands = []int{}
	}
	b, err := json.Marshal(bands)
	if err != nil {
		return "", fmt.Errorf("encoding bands: %w", err)
	}
	return string(b), nil
}

func marshalMeta(meta map[string]any) (string, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encoding meta: %w", err)
	}
	return string(b), nil
}
