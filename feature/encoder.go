package feature

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pipeline"
)

// StringIndexer 为离散取值分配零基索引：按出现频次降序排名，
// 频次相同按首次出现顺序。索引一经拟合即冻结，跨品类全局一致。
type StringIndexer struct {
	Index  map[string]int
	Values []string // 按索引序排列的取值表
}

// FitStringIndexer 在全量取值上拟合索引器。
func FitStringIndexer(values []string) *StringIndexer {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	distinct := make([]string, 0)

	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
			distinct = append(distinct, v)
		}
		counts[v]++
	}

	// 频次降序，平频按首次出现顺序；distinct 本身已按首次出现排列，
	// 用稳定的插入排序语义即可：直接按 (count desc, firstSeen asc) 排序。
	sortByRank(distinct, counts, firstSeen)

	idx := &StringIndexer{
		Index:  make(map[string]int, len(distinct)),
		Values: distinct,
	}
	for i, v := range distinct {
		idx.Index[v] = i
	}
	return idx
}

func sortByRank(values []string, counts, firstSeen map[string]int) {
	// 取值规模小（品牌/颜色），插入排序足够且天然稳定。
	for i := 1; i < len(values); i++ {
		for j := i; j > 0; j-- {
			a, b := values[j-1], values[j]
			if counts[b] > counts[a] || (counts[b] == counts[a] && firstSeen[b] < firstSeen[a]) {
				values[j-1], values[j] = b, a
			} else {
				break
			}
		}
	}
}

// Size 返回拟合时观测到的取值基数。
func (x *StringIndexer) Size() int { return len(x.Values) }

// OneHotEncoder 基于已拟合的 StringIndexer 输出定长 one-hot 向量。
// 向量长度等于拟合时的取值基数（全基数，不做 drop-one）；
// 未见过的取值映射为全零向量。
type OneHotEncoder struct {
	Indexer *StringIndexer
}

// Encode 编码单个取值。
func (e *OneHotEncoder) Encode(value string) []float64 {
	vec := make([]float64, e.Indexer.Size())
	if i, ok := e.Indexer.Index[value]; ok {
		vec[i] = 1.0
	}
	return vec
}

// EncodeNode 是类目编码阶段：在整个连接后语料上拟合 brand 与 colors
// 两个独立的编码器，再为每条记录写入 one-hot 向量。
// 拟合发生在任何品类划分之前，因此索引跨品类全局一致。
type EncodeNode struct {
	// 拟合产物，Process 结束后冻结只读。
	Brand  *OneHotEncoder
	Colors *OneHotEncoder
}

func (n *EncodeNode) Name() string        { return "feature.encode" }
func (n *EncodeNode) Kind() pipeline.Kind { return pipeline.KindEncode }

func (n *EncodeNode) Process(
	_ context.Context,
	_ *core.BatchContext,
	products []*core.Product,
) ([]*core.Product, error) {
	brands := make([]string, len(products))
	colors := make([]string, len(products))
	for i, p := range products {
		brands[i] = p.Brand
		colors[i] = p.Colors
	}

	n.Brand = &OneHotEncoder{Indexer: FitStringIndexer(brands)}
	n.Colors = &OneHotEncoder{Indexer: FitStringIndexer(colors)}

	for _, p := range products {
		p.BrandVec = n.Brand.Encode(p.Brand)
		p.ColorsVec = n.Colors.Encode(p.Colors)
	}
	return products, nil
}
