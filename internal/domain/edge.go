package domain

// Edge is a directed, labeled relation between two nodes. The triple
// (SourceID, TargetID, Relation) is the identity; Weight and Note are
// payload and are fully replaced on re-upsert.
type Edge struct {
	SourceID  string
	TargetID  string
	Relation  string
	Weight    float64
	Note      string
	CreatedAt float64
}

// EdgeSpec carries the caller-supplied fields of an edge upsert. Both
// endpoints must reference existing nodes.
type EdgeSpec struct {
	SourceID string
	TargetID string
	Relation string
	Weight   float64
	Note     string
}
