package prep

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BDP-team7/BDP-team7/core"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name  string
		input []core.RankingRecord
		want  map[string]int // productId -> surviving ranking
	}{
		{
			name: "latest observation wins",
			input: []core.RankingRecord{
				{ProductID: "p1", Date: day("2024-01-01"), Ranking: 10},
				{ProductID: "p1", Date: day("2024-03-01"), Ranking: 200},
				{ProductID: "p1", Date: day("2024-02-01"), Ranking: 50},
			},
			want: map[string]int{"p1": 200},
		},
		{
			name: "same max date keeps smaller ranking",
			input: []core.RankingRecord{
				{ProductID: "p1", Date: day("2024-01-01"), Ranking: 120},
				{ProductID: "p1", Date: day("2024-01-01"), Ranking: 80},
			},
			want: map[string]int{"p1": 80},
		},
		{
			name: "independent products",
			input: []core.RankingRecord{
				{ProductID: "p1", Date: day("2024-01-01"), Ranking: 1},
				{ProductID: "p2", Date: day("2024-01-02"), Ranking: 2},
				{ProductID: "p2", Date: day("2024-01-01"), Ranking: 300},
			},
			want: map[string]int{"p1": 1, "p2": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduplicate(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			seen := map[string]bool{}
			for _, r := range got {
				if seen[r.ProductID] {
					t.Errorf("product %s appears more than once", r.ProductID)
				}
				seen[r.ProductID] = true
				if want := tt.want[r.ProductID]; r.Ranking != want {
					t.Errorf("product %s ranking = %d, want %d", r.ProductID, r.Ranking, want)
				}
			}
		})
	}
}

func TestLabelBoundary(t *testing.T) {
	// recommend = 1 iff ranking <= 150
	cases := map[int]int{1: 1, 150: 1, 151: 0, 500: 0}
	for ranking, want := range cases {
		if got := Label(ranking, DefaultRecommendThreshold); got != want {
			t.Errorf("Label(%d) = %d, want %d", ranking, got, want)
		}
	}
}

func TestJoinNode(t *testing.T) {
	node := &JoinNode{
		Rankings: []core.RankingRecord{
			{ProductID: "p1", Date: day("2024-01-02"), Ranking: 100},
			{ProductID: "p1", Date: day("2024-01-01"), Ranking: 400},
			{ProductID: "p2", Date: day("2024-01-01"), Ranking: 200},
			{ProductID: "p3", Date: day("2024-01-01"), Ranking: 10}, // no keyword side
		},
		Keywords: []core.KeywordRecord{
			{ProductID: "p1", BrandName: "brandA", Colors: "", Keywords: "맨투맨, 오버핏",
				Rating: math.NaN(), RatingCount: math.NaN(), Price: 100, Category: "shoes"},
			{ProductID: "p2", BrandName: "brandB", Colors: "black", Keywords: "",
				Rating: 4.5, RatingCount: 10, Price: 200, Category: "pants"},
			{ProductID: "p9", BrandName: "brandC", Category: "shoes"}, // no ranking side
		},
	}

	bctx := &core.BatchContext{Logger: zerolog.Nop()}
	products, err := node.Process(context.Background(), bctx, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// inner join: p3 and p9 must be absent
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	p1 := products[0]
	if p1.ID != "p1" {
		t.Fatalf("first product = %s, want p1", p1.ID)
	}
	if p1.Recommend != 1 {
		t.Errorf("p1 recommend = %d, want 1 (latest ranking 100)", p1.Recommend)
	}
	if p1.Colors != "unknown" {
		t.Errorf("p1 colors = %q, want filled %q", p1.Colors, "unknown")
	}
	if p1.Rating != 0 || p1.RatingCount != 0 {
		t.Errorf("p1 rating/ratingCount = %v/%v, want 0/0 after fill", p1.Rating, p1.RatingCount)
	}
	if len(p1.Keywords) != 2 || p1.Keywords[0] != "맨투맨" || p1.Keywords[1] != "오버핏" {
		t.Errorf("p1 keywords = %v, want parsed token list", p1.Keywords)
	}

	p2 := products[1]
	if p2.Recommend != 0 {
		t.Errorf("p2 recommend = %d, want 0 (ranking 200)", p2.Recommend)
	}
	if len(p2.Keywords) != 0 {
		t.Errorf("p2 keywords = %v, want empty token list", p2.Keywords)
	}
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"a, b, c", []string{"a", "b", "c"}},
		{"a,b", []string{"a", "b"}},
		{"", []string{}},
		{"  ", []string{}},
		{"a, , b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := SplitKeywords(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("SplitKeywords(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitKeywords(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}
