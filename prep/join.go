package prep

import (
	"context"
	"strings"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pipeline"
)

// DefaultRecommendThreshold 是原始行为中“榜单前 50%”对应的名次阈值。
const DefaultRecommendThreshold = 150

// JoinNode 是一个 Prep Node：对榜单做去重与打标，再与关键词数据内连接。
// 作为链首节点，它忽略输入记录，直接从持有的两份数据源生成 Product 集合。
//
// 契约：
//   - 去重后每个商品只剩最新一条观测（见 Deduplicate）
//   - 打标后原始名次立即丢弃，之后任何阶段都无法再触达它
//   - 内连接：任一侧缺失的商品不产出记录
//   - 连接后仅对 colors/keywords/rating/ratingCount 补缺省值，其余字段原样透传
type JoinNode struct {
	Rankings []core.RankingRecord
	Keywords []core.KeywordRecord

	// Threshold 是推荐标签的名次阈值，<=0 时取 DefaultRecommendThreshold。
	Threshold int
}

func (n *JoinNode) Name() string        { return "prep.join" }
func (n *JoinNode) Kind() pipeline.Kind { return pipeline.KindPrep }

func (n *JoinNode) Process(
	_ context.Context,
	_ *core.BatchContext,
	_ []*core.Product,
) ([]*core.Product, error) {
	threshold := n.Threshold
	if threshold <= 0 {
		threshold = DefaultRecommendThreshold
	}

	byID := make(map[string]core.KeywordRecord, len(n.Keywords))
	for _, kw := range n.Keywords {
		byID[kw.ProductID] = kw
	}

	deduped := Deduplicate(n.Rankings)
	products := make([]*core.Product, 0, len(deduped))
	for _, r := range deduped {
		kw, ok := byID[r.ProductID]
		if !ok {
			continue // inner join
		}
		products = append(products, join(r, kw, threshold))
	}
	return products, nil
}

func join(r core.RankingRecord, kw core.KeywordRecord, threshold int) *core.Product {
	colors := kw.Colors
	if colors == "" {
		colors = "unknown"
	}
	rating := kw.Rating
	if core.Missing(rating) {
		rating = 0
	}
	ratingCount := kw.RatingCount
	if core.Missing(ratingCount) {
		ratingCount = 0
	}

	return &core.Product{
		ID:        r.ProductID,
		Recommend: Label(r.Ranking, threshold),
		Category:  kw.Category,

		Brand:    kw.BrandName,
		Colors:   colors,
		Keywords: SplitKeywords(kw.Keywords),

		Rating:         rating,
		RatingCount:    ratingCount,
		Price:          kw.Price,
		DiscountRate:   kw.DiscountRate,
		ConversionRate: kw.ConversionRate,
		Trending:       kw.Trending,
		TotalSales:     kw.TotalSales,
		Views:          kw.Views,
		Likes:          kw.Likes,
	}
}

// SplitKeywords 将逗号分隔的关键词串解析为有序 token 列表。
// 空串解析为空列表（缺失关键词的商品合法，不是错误）。
func SplitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
