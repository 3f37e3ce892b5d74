package domain

// Advisory vocabularies. Values are stored as plain strings and never
// enforced; the recommended sets are published through the kg://schema
// resource so the calling agent can discover them.
var (
	NodeTypes = []string{
		"concept", "metaphor", "principle", "model", "person",
		"band", "insight", "pattern", "question",
	}

	NodeStatuses = []string{"seed", "explored", "deep", "verified", "archived"}

	Relations = []string{
		"contains", "contrasts", "becomes", "mirrors", "requires",
		"extends", "instantiates", "refines", "grounds", "maps_to",
		"emerges_from", "dissolves_into", "polarizes",
	}
)

const (
	DefaultNodeType   = "concept"
	DefaultNodeStatus = "seed"
)

// Node is a single concept in the knowledge graph. The ID is a
// caller-chosen slug and immutable once created. Timestamps are unix
// seconds, matching the REAL columns they are stored in.
type Node struct {
	ID        string
	Type      string
	Summary   string
	Bands     []int
	Domain    string
	Status    string
	KaiNote   string
	Meta      map[string]any
	CreatedAt float64
	UpdatedAt float64
}

// NodeIndex is the identity-only projection used by index-depth domain
// loads and the TUI browser.
type NodeIndex struct {
	ID     string
	Type   string
	Status string
	Domain string
}

// NodeSpec carries the caller-supplied fields of a node upsert. On
// update, zero values mean "leave unchanged": scalar fields are only
// written when non-empty, Bands only when non-empty, and Meta is
// deep-merged key by key instead of replaced.
type NodeSpec struct {
	ID      string
	Type    string
	Summary string
	Bands   []int
	Domain  string
	Status  string
	KaiNote string
	Meta    map[string]any
}
