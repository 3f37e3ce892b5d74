package commands

import (
	"strings"
	"testing"

	"kgraph/internal/application"
	"kgraph/internal/domain"
)

func TestPutNodeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.NodeSpec
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid minimal spec",
			spec: domain.NodeSpec{ID: "flow"},
		},
		{
			name:    "empty id",
			spec:    domain.NodeSpec{Summary: "orphan"},
			wantErr: true,
			errMsg:  "node ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewPutNodeCommand(newFakeGraph(), tt.spec)
			checkValidation(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestPutEdgeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.EdgeSpec
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid spec",
			spec: domain.EdgeSpec{SourceID: "a", TargetID: "b", Relation: "requires", Weight: 1.0},
		},
		{
			name:    "missing source",
			spec:    domain.EdgeSpec{TargetID: "b", Relation: "requires"},
			wantErr: true,
			errMsg:  "source",
		},
		{
			name:    "missing target",
			spec:    domain.EdgeSpec{SourceID: "a", Relation: "requires"},
			wantErr: true,
			errMsg:  "target",
		},
		{
			name:    "missing relation",
			spec:    domain.EdgeSpec{SourceID: "a", TargetID: "b"},
			wantErr: true,
			errMsg:  "relation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewPutEdgeCommand(newFakeGraph(), tt.spec)
			checkValidation(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestBulkCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		batch   application.BulkBatch
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid batch",
			batch: application.BulkBatch{
				Nodes: []application.BulkNodeInput{{ID: "a"}},
				Edges: []application.BulkEdgeInput{{SourceID: "a", TargetID: "a", Relation: "mirrors"}},
			},
		},
		{
			name:  "empty batch",
			batch: application.BulkBatch{},
		},
		{
			name: "node without id",
			batch: application.BulkBatch{
				Nodes: []application.BulkNodeInput{{Summary: "anonymous"}},
			},
			wantErr: true,
			errMsg:  "has no id",
		},
		{
			name: "edge without relation",
			batch: application.BulkBatch{
				Edges: []application.BulkEdgeInput{{SourceID: "a", TargetID: "b"}},
			},
			wantErr: true,
			errMsg:  "needs source_id, target_id and relation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewBulkCommand(newFakeGraph(), tt.batch)
			checkValidation(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestDocumentCommands_Validate(t *testing.T) {
	docs := &fakeDocs{}

	if err := NewCreateDocumentCommand(docs, "", "", 1, nil).Validate(); err == nil {
		t.Error("create: expected error for empty title")
	}
	if err := NewAppendDocumentCommand(docs, "", "more", nil).Validate(); err == nil {
		t.Error("append: expected error for empty id")
	}
	if err := NewReadDocumentCommand(docs, "").Validate(); err == nil {
		t.Error("read: expected error for empty id")
	}
	if err := NewDeleteDocumentCommand(docs, "").Validate(); err == nil {
		t.Error("delete: expected error for empty id")
	}
}

func checkValidation(t *testing.T, err error, wantErr bool, errMsg string) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Errorf("expected error containing %q, got nil", errMsg)
			return
		}
		if !strings.Contains(err.Error(), errMsg) {
			t.Errorf("expected error containing %q, got %q", errMsg, err.Error())
		}
		return
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
