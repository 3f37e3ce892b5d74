package application

import "kgraph/internal/domain"

// Wire projections use the abbreviated field names documented by the
// kg://schema resource. Payloads marshal compact (no indentation) and
// empty collections marshal as []/{} rather than null.

// NodeWire is the full node projection.
type NodeWire struct {
	ID      string         `json:"id"`
	Type    string         `json:"t"`
	Summary string         `json:"s"`
	Bands   []int          `json:"b"`
	Domain  string         `json:"d"`
	Status  string         `json:"st"`
	KaiNote string         `json:"k"`
	Meta    map[string]any `json:"m"`
}

// NodeIndexWire is the identity-only node projection.
type NodeIndexWire struct {
	ID     string `json:"id"`
	Type   string `json:"t"`
	Status string `json:"st"`
	Domain string `json:"d"`
}

// EdgeWire is the edge projection.
type EdgeWire struct {
	Source   string  `json:"src"`
	Relation string  `json:"rel"`
	Target   string  `json:"tgt"`
	Weight   float64 `json:"w"`
	Note     string  `json:"n"`
}

// DomainWire is one entry of the flat domain index.
type DomainWire struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	LastUpdated float64 `json:"last_updated"`
}

// DomainTreeWire is one root bucket of the full domain listing.
type DomainTreeWire struct {
	Name        string       `json:"name"`
	Count       int          `json:"count"`
	LastUpdated float64      `json:"last_updated"`
	SubDomains  []DomainWire `json:"sub_domains"`
}

// SubDomainWire is an immediate sub-domain within a loaded scope.
type SubDomainWire struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DocumentWire is the full document projection.
type DocumentWire struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Session int      `json:"session"`
	NodeIDs []string `json:"node_ids"`
	Created float64  `json:"created"`
	Updated float64  `json:"updated"`
}

// DocumentIndexWire is the document listing projection.
type DocumentIndexWire struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Session int     `json:"session"`
	Length  int     `json:"len"`
	Updated float64 `json:"updated"`
}

func WireNode(n *domain.Node) NodeWire {
	bands := n.Bands
	if bands == nil {
		bands = []int{}
	}
	meta := n.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	return NodeWire{
		ID:      n.ID,
		Type:    n.Type,
		Summary: n.Summary,
		Bands:   bands,
		Domain:  n.Domain,
		Status:  n.Status,
		KaiNote: n.KaiNote,
		Meta:    meta,
	}
}

func WireNodes(nodes []domain.Node) []NodeWire {
	out := make([]NodeWire, 0, len(nodes))
	for i := range nodes {
		out = append(out, WireNode(&nodes[i]))
	}
	return out
}

func WireNodeIndex(n domain.NodeIndex) NodeIndexWire {
	return NodeIndexWire{ID: n.ID, Type: n.Type, Status: n.Status, Domain: n.Domain}
}

func WireNodeIndexes(nodes []domain.NodeIndex) []NodeIndexWire {
	out := make([]NodeIndexWire, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, WireNodeIndex(n))
	}
	return out
}

func WireEdge(e domain.Edge) EdgeWire {
	return EdgeWire{
		Source:   e.SourceID,
		Relation: e.Relation,
		Target:   e.TargetID,
		Weight:   e.Weight,
		Note:     e.Note,
	}
}

func WireEdges(edges []domain.Edge) []EdgeWire {
	out := make([]EdgeWire, 0, len(edges))
	for _, e := range edges {
		out = append(out, WireEdge(e))
	}
	return out
}

func WireDocument(d *domain.Document) DocumentWire {
	ids := d.NodeIDs
	if ids == nil {
		ids = []string{}
	}
	return DocumentWire{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		Session: d.SessionNumber,
		NodeIDs: ids,
		Created: d.CreatedAt,
		Updated: d.UpdatedAt,
	}
}

func WireDocumentIndex(d domain.DocumentIndex) DocumentIndexWire {
	return DocumentIndexWire{
		ID:      d.ID,
		Title:   d.Title,
		Session: d.SessionNumber,
		Length:  d.Length,
		Updated: d.UpdatedAt,
	}
}

func WireDocumentIndexes(docs []domain.DocumentIndex) []DocumentIndexWire {
	out := make([]DocumentIndexWire, 0, len(docs))
	for _, d := range docs {
		out = append(out, WireDocumentIndex(d))
	}
	return out
}
