package train

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BDP-team7/BDP-team7/core"
)

func makeProducts(category string, n int) []*core.Product {
	out := make([]*core.Product, n)
	for i := range out {
		out[i] = &core.Product{
			ID:       fmt.Sprintf("%s-%03d", category, i),
			Category: category,
		}
	}
	return out
}

func newTestSplitter() *Splitter {
	return &Splitter{
		Categories: []string{"clothes_top", "pants", "shoes", "outers"},
		TrainRatio: 0.7,
		Seed:       DefaultSeed,
	}
}

func TestPartition(t *testing.T) {
	s := newTestSplitter()
	bctx := &core.BatchContext{Logger: zerolog.Nop()}

	var products []*core.Product
	products = append(products, makeProducts("shoes", 3)...)
	products = append(products, makeProducts("pants", 2)...)
	products = append(products, makeProducts("hats", 4)...) // unrecognized, dropped

	buckets := s.Partition(bctx, products)

	if len(buckets["shoes"]) != 3 || len(buckets["pants"]) != 2 {
		t.Errorf("bucket sizes = shoes:%d pants:%d, want 3/2", len(buckets["shoes"]), len(buckets["pants"]))
	}
	if _, ok := buckets["hats"]; ok {
		t.Error("unrecognized category must not create a bucket")
	}

	// buckets are pairwise disjoint
	seen := map[string]string{}
	for cat, bucket := range buckets {
		for _, p := range bucket {
			if prev, ok := seen[p.ID]; ok {
				t.Errorf("product %s in both %s and %s", p.ID, prev, cat)
			}
			seen[p.ID] = cat
		}
	}
}

func TestSplitDeterminism(t *testing.T) {
	s := newTestSplitter()
	products := makeProducts("shoes", 200)

	first := s.Split("shoes", products)
	second := s.Split("shoes", products)

	if len(first.Train) != len(second.Train) || len(first.Test) != len(second.Test) {
		t.Fatalf("repeated split differs: %d/%d vs %d/%d",
			len(first.Train), len(first.Test), len(second.Train), len(second.Test))
	}
	for i := range first.Train {
		if first.Train[i].ID != second.Train[i].ID {
			t.Fatalf("train member %d differs between runs", i)
		}
	}

	// roughly 70/30: exact ratio depends on hashing, but both sides must be populated
	if len(first.Train) == 0 || len(first.Test) == 0 {
		t.Fatalf("degenerate split: train=%d test=%d", len(first.Train), len(first.Test))
	}
}

func TestSplitOrderIndependence(t *testing.T) {
	s := newTestSplitter()
	products := makeProducts("pants", 50)

	forward := s.Split("pants", products)
	assignment := map[string]bool{}
	for _, p := range forward.Train {
		assignment[p.ID] = true
	}

	// reverse input order: per-record assignment must not change
	reversed := make([]*core.Product, len(products))
	for i, p := range products {
		reversed[len(products)-1-i] = p
	}
	backward := s.Split("pants", reversed)
	for _, p := range backward.Train {
		if !assignment[p.ID] {
			t.Errorf("product %s changed from test to train when input order reversed", p.ID)
		}
	}
	if len(forward.Train) != len(backward.Train) {
		t.Errorf("train size changed with order: %d vs %d", len(forward.Train), len(backward.Train))
	}
}

func TestSplitCategoryIndependence(t *testing.T) {
	// assignment within a category must not depend on other categories' records
	s := newTestSplitter()
	shoes := makeProducts("shoes", 40)

	alone := s.Split("shoes", shoes)
	// a different category existing elsewhere cannot influence the shoes split
	_ = s.Split("pants", makeProducts("pants", 40))
	again := s.Split("shoes", shoes)

	if len(alone.Train) != len(again.Train) {
		t.Fatalf("shoes split influenced by pants split: %d vs %d", len(alone.Train), len(again.Train))
	}
	for i := range alone.Train {
		if alone.Train[i].ID != again.Train[i].ID {
			t.Fatalf("train member %d differs after splitting another category", i)
		}
	}
}
