package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/ports"
)

// CreateDocumentResult confirms a document creation.
type CreateDocumentResult struct {
	Op      string `json:"op"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Session int    `json:"session"`
}

// CreateDocumentCommand stores a new session document under a freshly
// generated id.
type CreateDocumentCommand struct {
	docs          ports.DocumentRepository
	Title         string
	Content       string
	SessionNumber int
	NodeIDs       []string
}

func NewCreateDocumentCommand(docs ports.DocumentRepository, title, content string, sessionNumber int, nodeIDs []string) *CreateDocumentCommand {
	return &CreateDocumentCommand{docs: docs, Title: title, Content: content, SessionNumber: sessionNumber, NodeIDs: nodeIDs}
}

func (c *CreateDocumentCommand) Validate() error {
	if c.Title == "" {
		return &application.ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}

func (c *CreateDocumentCommand) Execute(ctx context.Context) (*CreateDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	doc, err := c.docs.CreateDocument(c.Title, c.Content, c.SessionNumber, c.NodeIDs)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return &CreateDocumentResult{Op: "doc_created", ID: doc.ID, Title: doc.Title, Session: doc.SessionNumber}, nil
}

// AppendDocumentResult reports the grown content length and merged
// node-id count.
type AppendDocumentResult struct {
	Op     string `json:"op"`
	ID     string `json:"id"`
	Length int    `json:"len"`
	Nodes  int    `json:"nodes"`
}

// AppendDocumentCommand concatenates content onto an existing document
// (newline-separated) and merges the node-id list by set union. This
// is the designated path for incremental session distillation.
type AppendDocumentCommand struct {
	docs    ports.DocumentRepository
	ID      string
	Content string
	NodeIDs []string
}

func NewAppendDocumentCommand(docs ports.DocumentRepository, id, content string, nodeIDs []string) *AppendDocumentCommand {
	return &AppendDocumentCommand{docs: docs, ID: id, Content: content, NodeIDs: nodeIDs}
}

func (c *AppendDocumentCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "document ID is required"}
	}
	return nil
}

func (c *AppendDocumentCommand) Execute(ctx context.Context) (*AppendDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	doc, err := c.docs.AppendDocument(c.ID, c.Content, c.NodeIDs)
	if err != nil {
		return nil, fmt.Errorf("appending to document %s: %w", c.ID, err)
	}
	if doc == nil {
		return nil, application.NewDocumentNotFound(c.ID)
	}
	return &AppendDocumentResult{Op: "doc_appended", ID: doc.ID, Length: len(doc.Content), Nodes: len(doc.NodeIDs)}, nil
}

// ReadDocumentCommand returns the full document record.
type ReadDocumentCommand struct {
	docs ports.DocumentRepository
	ID   string
}

func NewReadDocumentCommand(docs ports.DocumentRepository, id string) *ReadDocumentCommand {
	return &ReadDocumentCommand{docs: docs, ID: id}
}

func (c *ReadDocumentCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "document ID is required"}
	}
	return nil
}

func (c *ReadDocumentCommand) Execute(ctx context.Context) (*application.DocumentWire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	doc, err := c.docs.GetDocument(c.ID)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", c.ID, err)
	}
	if doc == nil {
		return nil, application.NewDocumentNotFound(c.ID)
	}
	wire := application.WireDocument(doc)
	return &wire, nil
}

// SearchDocumentsResult is a document index listing.
type SearchDocumentsResult struct {
	Query string                          `json:"q"`
	Count int                             `json:"count"`
	Docs  []application.DocumentIndexWire `json:"docs"`
}

// SearchDocumentsCommand tries three mutually exclusive modes in
// priority order: exact session match, then substring match on title
// or content, then a most-recent-first listing.
type SearchDocumentsCommand struct {
	docs          ports.DocumentRepository
	Query         string
	SessionNumber int
	Limit         int
}

func NewSearchDocumentsCommand(docs ports.DocumentRepository, query string, sessionNumber, limit int) *SearchDocumentsCommand {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return &SearchDocumentsCommand{docs: docs, Query: query, SessionNumber: sessionNumber, Limit: limit}
}

func (c *SearchDocumentsCommand) Execute(ctx context.Context) (*SearchDocumentsResult, error) {
	docs, err := c.docs.SearchDocuments(c.Query, c.SessionNumber, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}

	label := c.Query
	if c.SessionNumber > 0 {
		label = fmt.Sprintf("session:%d", c.SessionNumber)
	}
	return &SearchDocumentsResult{
		Query: label,
		Count: len(docs),
		Docs:  application.WireDocumentIndexes(docs),
	}, nil
}

// DeleteDocumentResult returns the deleted title for confirmation.
type DeleteDocumentResult struct {
	Op    string `json:"op"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DeleteDocumentCommand permanently removes a document.
type DeleteDocumentCommand struct {
	docs ports.DocumentRepository
	ID   string
}

func NewDeleteDocumentCommand(docs ports.DocumentRepository, id string) *DeleteDocumentCommand {
	return &DeleteDocumentCommand{docs: docs, ID: id}
}

func (c *DeleteDocumentCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{Field: "id", Message: "document ID is required"}
	}
	return nil
}

func (c *DeleteDocumentCommand) Execute(ctx context.Context) (*DeleteDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	title, found, err := c.docs.DeleteDocument(c.ID)
	if err != nil {
		return nil, fmt.Errorf("deleting document %s: %w", c.ID, err)
	}
	if !found {
		return nil, application.NewDocumentNotFound(c.ID)
	}
	return &DeleteDocumentResult{Op: "doc_deleted", ID: c.ID, Title: title}, nil
}
