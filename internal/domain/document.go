package domain

// Document is an episodic free-text record, typically a session
// distillate. Content grows append-only; NodeIDs cross-reference graph
// nodes with set-union semantics on append.
type Document struct {
	ID            string
	Title         string
	Content       string
	SessionNumber int
	NodeIDs       []string
	CreatedAt     float64
	UpdatedAt     float64
}

// DocumentIndex is the listing projection: identity plus content
// length, without the content itself.
type DocumentIndex struct {
	ID            string
	Title         string
	SessionNumber int
	Length        int
	UpdatedAt     float64
}
