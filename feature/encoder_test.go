package feature

import (
	"context"
	"testing"

	"github.com/BDP-team7/BDP-team7/core"
)

func TestFitStringIndexer(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string // expected index order
	}{
		{
			name:   "frequency descending",
			values: []string{"a", "b", "b", "c", "b", "c"},
			want:   []string{"b", "c", "a"},
		},
		{
			name:   "ties broken by first-seen order",
			values: []string{"x", "y", "z"},
			want:   []string{"x", "y", "z"},
		},
		{
			name:   "single value",
			values: []string{"only", "only"},
			want:   []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := FitStringIndexer(tt.values)
			if idx.Size() != len(tt.want) {
				t.Fatalf("size = %d, want %d", idx.Size(), len(tt.want))
			}
			for i, v := range tt.want {
				if idx.Values[i] != v {
					t.Errorf("index %d = %q, want %q", i, idx.Values[i], v)
				}
				if idx.Index[v] != i {
					t.Errorf("Index[%q] = %d, want %d", v, idx.Index[v], i)
				}
			}
		})
	}
}

func TestOneHotEncoder(t *testing.T) {
	enc := &OneHotEncoder{Indexer: FitStringIndexer([]string{"a", "b", "b"})}

	// full cardinality: length equals distinct values at fit time
	vec := enc.Encode("b")
	if len(vec) != 2 {
		t.Fatalf("vector length = %d, want 2", len(vec))
	}
	if vec[0] != 1.0 || vec[1] != 0.0 {
		t.Errorf("Encode(b) = %v, want [1 0]", vec)
	}

	// unseen value maps to all-zero
	zero := enc.Encode("unseen")
	for i, v := range zero {
		if v != 0 {
			t.Errorf("Encode(unseen)[%d] = %v, want 0", i, v)
		}
	}
}

func TestEncodeNode(t *testing.T) {
	products := []*core.Product{
		{Brand: "brandA", Colors: "black"},
		{Brand: "brandA", Colors: "white"},
		{Brand: "brandB", Colors: "black"},
	}

	node := &EncodeNode{}
	out, err := node.Process(context.Background(), &core.BatchContext{}, products)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, p := range out {
		if len(p.BrandVec) != 2 {
			t.Errorf("brand vector length = %d, want 2", len(p.BrandVec))
		}
		if len(p.ColorsVec) != 2 {
			t.Errorf("colors vector length = %d, want 2", len(p.ColorsVec))
		}
	}
	// brandA is more frequent, so it owns index 0
	if out[0].BrandVec[0] != 1.0 || out[2].BrandVec[1] != 1.0 {
		t.Errorf("brand encoding not frequency ranked: %v / %v", out[0].BrandVec, out[2].BrandVec)
	}
}
