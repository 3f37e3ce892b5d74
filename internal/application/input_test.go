package application

import (
	"errors"
	"testing"
)

func TestParseBands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "empty means not supplied", input: "", want: nil},
		{name: "valid array", input: "[1,3,5]", want: []int{1, 3, 5}},
		{name: "empty array", input: "[]", want: []int{}},
		{name: "malformed", input: "[1,", wantErr: true},
		{name: "wrong type", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBands(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseMeta(t *testing.T) {
	meta, err := ParseMeta(`{"source":"book","page":12}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["source"] != "book" || meta["page"] != float64(12) {
		t.Errorf("unexpected meta: %v", meta)
	}

	if got, err := ParseMeta(""); err != nil || got != nil {
		t.Errorf("empty input should yield (nil, nil), got (%v, %v)", got, err)
	}

	if _, err := ParseMeta(`[1,2]`); err == nil {
		t.Error("expected error for non-object")
	}
}

func TestParseNodeIDs(t *testing.T) {
	ids, err := ParseNodeIDs(`["a","b"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("unexpected ids: %v", ids)
	}

	if got, err := ParseNodeIDs(""); err != nil || got != nil {
		t.Errorf("empty input should yield (nil, nil), got (%v, %v)", got, err)
	}

	if _, err := ParseNodeIDs(`"a"`); err == nil {
		t.Error("expected error for non-array")
	}
}

func TestParseBulkBatch(t *testing.T) {
	batch, err := ParseBulkBatch(`{
		"nodes": [{"id":"flow","type":"principle","bands":[2]}],
		"edges": [{"source_id":"flow","target_id":"flow","relation":"mirrors","weight":0.5}]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Nodes) != 1 || batch.Nodes[0].ID != "flow" {
		t.Errorf("unexpected nodes: %+v", batch.Nodes)
	}
	if len(batch.Edges) != 1 || batch.Edges[0].Weight == nil || *batch.Edges[0].Weight != 0.5 {
		t.Errorf("unexpected edges: %+v", batch.Edges)
	}

	// Absent weight stays nil so the command can default it.
	batch, err = ParseBulkBatch(`{"edges":[{"source_id":"a","target_id":"b","relation":"requires"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.Edges[0].Weight != nil {
		t.Errorf("expected nil weight, got %v", *batch.Edges[0].Weight)
	}

	if _, err := ParseBulkBatch(`{"nodes":`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
