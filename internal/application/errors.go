package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Not-found kinds as they appear on the wire.
const (
	KindNode     = "not_found"
	KindDocument = "doc_not_found"
)

// NotFoundError identifies a missing node or document. It travels back
// through the normal response channel as {"error":"<kind>:<id>"} and is
// never a transport-level fault.
type NotFoundError struct {
	Kind string
	ID   string
}

func NewNodeNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: KindNode, ID: id}
}

func NewDocumentNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: KindDocument, ID: id}
}

// Code returns the wire form, e.g. "not_found:some-node".
func (e *NotFoundError) Code() string {
	return e.Kind + ":" + e.ID
}

func (e *NotFoundError) Error() string {
	return e.Code()
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a rejected input parameter
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
