package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kgraph/internal/domain"
)

const documentColumns = "id, title, content, session_number, node_ids, created_at, updated_at"

// documentIDLength keeps generated ids short enough to quote in
// conversation while still collision-safe at personal scale.
const documentIDLength = 8

func scanDocument(r rowScanner) (*domain.Document, error) {
	var d domain.Document
	var nodeIDs string
	if err := r.Scan(&d.ID, &d.Title, &d.Content, &d.SessionNumber, &nodeIDs, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(nodeIDs), &d.NodeIDs); err != nil {
		return nil, fmt.Errorf("decoding node_ids of %s: %w", d.ID, err)
	}
	return &d, nil
}

// CreateDocument stores a new document under a generated id.
func (s *Store) CreateDocument(title, content string, sessionNumber int, nodeIDs []string) (*domain.Document, error) {
	if nodeIDs == nil {
		nodeIDs = []string{}
	}
	encoded, err := json.Marshal(nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("encoding node_ids: %w", err)
	}

	id := uuid.NewString()[:documentIDLength]
	now := nowUnix()
	_, err = s.db.Exec(`
		INSERT INTO documents (id, title, content, session_number, node_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, title, content, sessionNumber, string(encoded), now, now)
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		ID:            id,
		Title:         title,
		Content:       content,
		SessionNumber: sessionNumber,
		NodeIDs:       nodeIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// GetDocument retrieves a document by id, returning (nil, nil) when
// absent.
func (s *Store) GetDocument(id string) (*domain.Document, error) {
	row := s.db.QueryRow(`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// AppendDocument grows the content (newline-separated) and merges the
// node-id list by set union, keeping first-seen order. Returns
// (nil, nil) when the document does not exist.
func (s *Store) AppendDocument(id, content string, nodeIDs []string) (*domain.Document, error) {
	doc, err := s.GetDocument(id)
	if err != nil || doc == nil {
		return nil, err
	}

	doc.Content = doc.Content + "\n" + content
	seen := make(map[string]struct{}, len(doc.NodeIDs))
	for _, nid := range doc.NodeIDs {
		seen[nid] = struct{}{}
	}
	for _, nid := range nodeIDs {
		if _, ok := seen[nid]; !ok {
			seen[nid] = struct{}{}
			doc.NodeIDs = append(doc.NodeIDs, nid)
		}
	}

	encoded, err := json.Marshal(doc.NodeIDs)
	if err != nil {
		return nil, fmt.Errorf("encoding node_ids: %w", err)
	}
	doc.UpdatedAt = nowUnix()
	_, err = s.db.Exec(
		`UPDATE documents SET content = ?, node_ids = ?, updated_at = ? WHERE id = ?`,
		doc.Content, string(encoded), doc.UpdatedAt, id,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// SearchDocuments tries three mutually exclusive modes in priority
// order: exact session match, then substring match on title or
// content, then a most-recent-first listing.
func (s *Store) SearchDocuments(query string, sessionNumber, limit int) ([]domain.DocumentIndex, error) {
	switch {
	case sessionNumber > 0:
		return s.collectDocumentIndex(`
			SELECT id, title, session_number, LENGTH(content), updated_at FROM documents
			WHERE session_number = ? ORDER BY updated_at DESC LIMIT ?
		`, sessionNumber, limit)
	case query != "":
		pattern := "%" + query + "%"
		return s.collectDocumentIndex(`
			SELECT id, title, session_number, LENGTH(content), updated_at FROM documents
			WHERE title LIKE ? OR content LIKE ? ORDER BY updated_at DESC LIMIT ?
		`, pattern, pattern, limit)
	default:
		return s.RecentDocuments(limit)
	}
}

// RecentDocuments lists the index projection newest-session-first.
func (s *Store) RecentDocuments(limit int) ([]domain.DocumentIndex, error) {
	return s.collectDocumentIndex(`
		SELECT id, title, session_number, LENGTH(content), updated_at FROM documents
		ORDER BY session_number DESC, updated_at DESC LIMIT ?
	`, limit)
}

func (s *Store) collectDocumentIndex(query string, args ...any) ([]domain.DocumentIndex, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.DocumentIndex
	for rows.Next() {
		var d domain.DocumentIndex
		if err := rows.Scan(&d.ID, &d.Title, &d.SessionNumber, &d.Length, &d.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteDocument permanently removes a document, returning its title
// for confirmation and whether it existed.
func (s *Store) DeleteDocument(id string) (string, bool, error) {
	var title string
	err := s.db.QueryRow(`SELECT title FROM documents WHERE id = ?`, id).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if _, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id); err != nil {
		return "", false, err
	}
	return title, true, nil
}
