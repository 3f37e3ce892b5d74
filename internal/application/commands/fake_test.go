package commands

import (
	"sort"
	"strings"

	"kgraph/internal/domain"
)

// fakeGraph is an in-memory GraphRepository for command tests.
type fakeGraph struct {
	nodes map[string]domain.Node
	edges []domain.Edge
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{nodes: make(map[string]domain.Node)}
}

func (f *fakeGraph) addNode(id, nodeDomain string) {
	f.nodes[id] = domain.Node{
		ID:     id,
		Type:   domain.DefaultNodeType,
		Status: domain.DefaultNodeStatus,
		Domain: nodeDomain,
	}
}

func (f *fakeGraph) addEdge(src, rel, tgt string) {
	f.edges = append(f.edges, domain.Edge{SourceID: src, TargetID: tgt, Relation: rel, Weight: 1.0})
}

func (f *fakeGraph) GetNode(id string) (*domain.Node, error) {
	if n, ok := f.nodes[id]; ok {
		return &n, nil
	}
	return nil, nil
}

func (f *fakeGraph) UpsertNode(spec domain.NodeSpec) (bool, string, error) {
	_, existed := f.nodes[spec.ID]
	f.addNode(spec.ID, spec.Domain)
	return !existed, spec.Domain, nil
}

func (f *fakeGraph) DeleteNode(id string) error {
	delete(f.nodes, id)
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.SourceID != id && e.TargetID != id {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	return nil
}

func (f *fakeGraph) UpsertEdge(spec domain.EdgeSpec) error {
	f.addEdge(spec.SourceID, spec.Relation, spec.TargetID)
	return nil
}

func (f *fakeGraph) DeleteEdge(sourceID, targetID, relation string) error {
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.SourceID != sourceID || e.TargetID != targetID || e.Relation != relation {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	return nil
}

func (f *fakeGraph) BulkUpsert(nodes []domain.NodeSpec, edges []domain.EdgeSpec) (int, int, error) {
	for _, n := range nodes {
		f.addNode(n.ID, n.Domain)
	}
	for _, e := range edges {
		f.addEdge(e.SourceID, e.Relation, e.TargetID)
	}
	return len(nodes), len(edges), nil
}

func (f *fakeGraph) SetDomainBulk(domainName string, ids []string) error {
	for _, id := range ids {
		if n, ok := f.nodes[id]; ok {
			n.Domain = domainName
			f.nodes[id] = n
		}
	}
	return nil
}

func (f *fakeGraph) SearchNodes(query string, limit int) ([]domain.Node, error) {
	var out []domain.Node
	for _, n := range f.nodes {
		if strings.Contains(n.ID, query) || strings.Contains(n.Summary, query) {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeGraph) NodesByDomain(name string) ([]domain.Node, error) {
	var out []domain.Node
	for _, n := range f.nodes {
		if domain.InDomain(n.Domain, name) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeGraph) NodeIndexByDomain(name string) ([]domain.NodeIndex, error) {
	nodes, _ := f.NodesByDomain(name)
	out := make([]domain.NodeIndex, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, domain.NodeIndex{ID: n.ID, Type: n.Type, Status: n.Status, Domain: n.Domain})
	}
	return out, nil
}

func (f *fakeGraph) SubDomains(name string) ([]domain.DomainInfo, error) {
	counts := make(map[string]int)
	for _, n := range f.nodes {
		if n.Domain != name && domain.InDomain(n.Domain, name) {
			counts[n.Domain]++
		}
	}
	var out []domain.DomainInfo
	for d, c := range counts {
		out = append(out, domain.DomainInfo{Name: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGraph) domainGroups() []domain.DomainInfo {
	counts := make(map[string]int)
	for _, n := range f.nodes {
		counts[n.Domain]++
	}
	var out []domain.DomainInfo
	for d, c := range counts {
		out = append(out, domain.DomainInfo{Name: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeGraph) DomainSummary() ([]domain.DomainInfo, error) {
	return f.domainGroups(), nil
}

func (f *fakeGraph) DomainList() ([]domain.DomainInfo, error) {
	return f.domainGroups(), nil
}

func (f *fakeGraph) MetaNodes() ([]domain.Node, error) {
	return f.NodesByDomain(domain.MetaDomain)
}

func (f *fakeGraph) EdgesTouching(id, relation string) ([]domain.Edge, error) {
	var out []domain.Edge
	for _, e := range f.edges {
		if e.SourceID != id && e.TargetID != id {
			continue
		}
		if relation != "" && e.Relation != relation {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeGraph) EdgesWithin(ids []string) ([]domain.Edge, error) {
	in := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		in[id] = struct{}{}
	}
	var out []domain.Edge
	for _, e := range f.edges {
		_, src := in[e.SourceID]
		_, tgt := in[e.TargetID]
		if src && tgt {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeGraph) AllEdges() ([]domain.Edge, error) {
	return f.edges, nil
}

func (f *fakeGraph) EdgeCount() (int, error) {
	return len(f.edges), nil
}

// fakeState is an in-memory StateRepository.
type fakeState struct {
	values map[string]string
}

func newFakeState() *fakeState {
	return &fakeState{values: make(map[string]string)}
}

func (f *fakeState) State() (map[string]string, error) {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeState) SetState(key, value string) error {
	f.values[key] = value
	return nil
}

// fakeDocs is an in-memory DocumentRepository covering only what the
// boot path needs.
type fakeDocs struct {
	docs []domain.DocumentIndex
}

func (f *fakeDocs) CreateDocument(title, content string, sessionNumber int, nodeIDs []string) (*domain.Document, error) {
	return nil, nil
}

func (f *fakeDocs) GetDocument(id string) (*domain.Document, error) { return nil, nil }

func (f *fakeDocs) AppendDocument(id, content string, nodeIDs []string) (*domain.Document, error) {
	return nil, nil
}

func (f *fakeDocs) SearchDocuments(query string, sessionNumber, limit int) ([]domain.DocumentIndex, error) {
	return f.docs, nil
}

func (f *fakeDocs) RecentDocuments(limit int) ([]domain.DocumentIndex, error) {
	if len(f.docs) > limit {
		return f.docs[:limit], nil
	}
	return f.docs, nil
}

func (f *fakeDocs) DeleteDocument(id string) (string, bool, error) { return "", false, nil }
