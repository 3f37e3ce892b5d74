package ports

import "kgraph/internal/domain"

// GraphRepository is the only write path into the persistent store for
// graph entities. Point lookups return (nil, nil) when the row is
// absent; deletes of absent rows are no-ops.
type GraphRepository interface {
	// Node operations
	GetNode(id string) (*domain.Node, error)
	UpsertNode(spec domain.NodeSpec) (created bool, effectiveDomain string, err error)
	DeleteNode(id string) error

	// Edge operations. UpsertEdge fails when either endpoint does not
	// exist; deleting a node cascades to every edge touching it.
	UpsertEdge(spec domain.EdgeSpec) error
	DeleteEdge(sourceID, targetID, relation string) error

	// Bulk operations, each one committed transaction.
	BulkUpsert(nodes []domain.NodeSpec, edges []domain.EdgeSpec) (nodeCount, edgeCount int, err error)
	SetDomainBulk(domainName string, ids []string) error

	// Queries
	SearchNodes(query string, limit int) ([]domain.Node, error)
	NodesByDomain(name string) ([]domain.Node, error)
	NodeIndexByDomain(name string) ([]domain.NodeIndex, error)
	SubDomains(name string) ([]domain.DomainInfo, error)
	DomainSummary() ([]domain.DomainInfo, error)
	DomainList() ([]domain.DomainInfo, error)
	MetaNodes() ([]domain.Node, error)
	EdgesTouching(id, relation string) ([]domain.Edge, error)
	EdgesWithin(ids []string) ([]domain.Edge, error)
	AllEdges() ([]domain.Edge, error)
	EdgeCount() (int, error)
}

// StateRepository holds the flat session key/value map.
type StateRepository interface {
	State() (map[string]string, error)
	SetState(key, value string) error
}

// DocumentRepository stores episodic session documents.
type DocumentRepository interface {
	CreateDocument(title, content string, sessionNumber int, nodeIDs []string) (*domain.Document, error)
	GetDocument(id string) (*domain.Document, error)
	AppendDocument(id, content string, nodeIDs []string) (*domain.Document, error)
	SearchDocuments(query string, sessionNumber, limit int) ([]domain.DocumentIndex, error)
	RecentDocuments(limit int) ([]domain.DocumentIndex, error)
	DeleteDocument(id string) (title string, found bool, err error)
}

// Store is the full persistence surface, implemented by the sqlite
// adapter on a single database.
type Store interface {
	GraphRepository
	StateRepository
	DocumentRepository
}
