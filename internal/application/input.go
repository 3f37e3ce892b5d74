package application

import (
	"encoding/json"
	"fmt"
)

// Structured parameters cross the boundary as JSON-encoded strings.
// They are validated here for well-formedness only, never for schema.
// An empty string means "not supplied".

// BulkNodeInput is one node entry of a kg_bulk batch.
type BulkNodeInput struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Summary string         `json:"summary"`
	Bands   []int          `json:"bands"`
	Domain  string         `json:"domain"`
	Status  string         `json:"status"`
	KaiNote string         `json:"kai_note"`
	Meta    map[string]any `json:"meta"`
}

// BulkEdgeInput is one edge entry of a kg_bulk batch. Weight is a
// pointer so an absent weight can default to 1.0.
type BulkEdgeInput struct {
	SourceID string   `json:"source_id"`
	TargetID string   `json:"target_id"`
	Relation string   `json:"relation"`
	Weight   *float64 `json:"weight"`
	Note     string   `json:"note"`
}

// BulkBatch is the decoded kg_bulk payload.
type BulkBatch struct {
	Nodes []BulkNodeInput `json:"nodes"`
	Edges []BulkEdgeInput `json:"edges"`
}

func ParseBands(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var bands []int
	if err := json.Unmarshal([]byte(s), &bands); err != nil {
		return nil, &ValidationError{Field: "bands", Message: fmt.Sprintf("invalid JSON array: %v", err)}
	}
	return bands, nil
}

func ParseMeta(s string) (map[string]any, error) {
	if s == "" {
		return nil, nil
	}
	var meta map[string]any
	if err := json.Unmarshal([]byte(s), &meta); err != nil {
		return nil, &ValidationError{Field: "meta", Message: fmt.Sprintf("invalid JSON object: %v", err)}
	}
	return meta, nil
}

func ParseNodeIDs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, &ValidationError{Field: "node_ids", Message: fmt.Sprintf("invalid JSON array: %v", err)}
	}
	return ids, nil
}

func ParseBulkBatch(s string) (*BulkBatch, error) {
	var batch BulkBatch
	if err := json.Unmarshal([]byte(s), &batch); err != nil {
		return nil, &ValidationError{Field: "operations", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return &batch, nil
}
