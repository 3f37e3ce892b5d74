package sqlite

import (
	"kgraph/internal/domain"
)

func collectNodes(q querier, query string, args ...any) ([]domain.Node, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []domain.Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *n)
	}
	return nodes, rows.Err()
}

// SearchNodes substring-matches the query against id, summary,
// kai_note and the serialized meta payload.
func (s *Store) SearchNodes(query string, limit int) ([]domain.Node, error) {
	pattern := "%" + query + "%"
	return collectNodes(s.db, `
		SELECT `+nodeColumns+` FROM nodes
		WHERE id LIKE ? OR summary LIKE ? OR kai_note LIKE ? OR meta LIKE ?
		LIMIT ?
	`, pattern, pattern, pattern, pattern, limit)
}

// domainScope matches the exact domain or any dot-boundary descendant,
// so "a" covers "a.b" but never "ab".
const domainScope = `(domain = ? OR domain LIKE ?)`

func domainScopeArgs(name string) (string, string) {
	return name, name + ".%"
}

// NodesByDomain returns full records for every node inside the named
// domain scope, ordered by domain then recency.
func (s *Store) NodesByDomain(name string) ([]domain.Node, error) {
	exact, prefix := domainScopeArgs(name)
	return collectNodes(s.db, `
		SELECT `+nodeColumns+` FROM nodes
		WHERE `+domainScope+`
		ORDER BY domain, updated_at DESC
	`, exact, prefix)
}

// NodeIndexByDomain is NodesByDomain at index depth: identity-only
// projections in the same order.
func (s *Store) NodeIndexByDomain(name string) ([]domain.NodeIndex, error) {
	exact, prefix := domainScopeArgs(name)
	rows, err := s.db.Query(`
		SELECT id, type, status, domain FROM nodes
		WHERE `+domainScope+`
		ORDER BY domain, updated_at DESC
	`, exact, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []domain.NodeIndex
	for rows.Next() {
		var n domain.NodeIndex
		if err := rows.Scan(&n.ID, &n.Type, &n.Status, &n.Domain); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// SubDomains lists the domains strictly inside the named scope (the
// prefix matches, the scope itself excluded) with per-domain counts.
func (s *Store) SubDomains(name string) ([]domain.DomainInfo, error) {
	return s.collectDomainInfo(`
		SELECT domain, COUNT(*), MAX(updated_at) FROM nodes
		WHERE domain LIKE ?
		GROUP BY domain ORDER BY domain
	`, name+".%")
}

// DomainSummary groups all nodes by exact domain, most recently
// touched first. The empty domain appears as its own bucket.
func (s *Store) DomainSummary() ([]domain.DomainInfo, error) {
	return s.collectDomainInfo(`
		SELECT domain, COUNT(*), MAX(updated_at) FROM nodes
		GROUP BY domain ORDER BY MAX(updated_at) DESC
	`)
}

// DomainList is the same grouping ordered by domain name, the input
// order the tree projection expects.
func (s *Store) DomainList() ([]domain.DomainInfo, error) {
	return s.collectDomainInfo(`
		SELECT domain, COUNT(*), MAX(updated_at) FROM nodes
		GROUP BY domain ORDER BY domain
	`)
}

func (s *Store) collectDomainInfo(query string, args ...any) ([]domain.DomainInfo, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []domain.DomainInfo
	for rows.Next() {
		var d domain.DomainInfo
		if err := rows.Scan(&d.Name, &d.Count, &d.LastUpdated); err != nil {
			return nil, err
		}
		infos = append(infos, d)
	}
	return infos, rows.Err()
}

// MetaNodes returns the always-resident core set in full.
func (s *Store) MetaNodes() ([]domain.Node, error) {
	return collectNodes(s.db, `
		SELECT `+nodeColumns+` FROM nodes
		WHERE domain = ? ORDER BY updated_at DESC
	`, domain.MetaDomain)
}
