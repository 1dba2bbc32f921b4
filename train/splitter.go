// Package train 负责分品类的数据划分、模型训练与评估。
package train

import (
	"fmt"
	"hash/fnv"

	"github.com/BDP-team7/BDP-team7/core"
)

// DefaultSeed 是训练/测试划分与分类器采样的默认随机种子。
const DefaultSeed = 42

// Split 是单个品类内的训练/测试子集。
type Split struct {
	Train []*core.Product
	Test  []*core.Product
}

// Splitter 按品类分桶并在桶内做确定性的训练/测试划分。
//
// 划分规则：对 "seed:category:productId" 取 fnv64a 哈希映射到 [0,1)，
// 小于 TrainRatio 的进训练集。每条记录的归属只由种子、品类与商品 ID 决定，
// 与记录顺序无关，也与其他品类的任何状态无关。
type Splitter struct {
	Categories []string
	TrainRatio float64
	Seed       int64
}

// Partition 把记录分到品类桶中；品类不在全集内的记录被剔除（仅记日志）。
// 四个桶两两互斥：每条记录只有一个品类值，只会进入一个桶。
func (s *Splitter) Partition(bctx *core.BatchContext, products []*core.Product) map[string][]*core.Product {
	buckets := make(map[string][]*core.Product, len(s.Categories))
	for _, c := range s.Categories {
		buckets[c] = nil
	}

	dropped := 0
	for _, p := range products {
		if _, ok := buckets[p.Category]; !ok {
			dropped++
			continue
		}
		buckets[p.Category] = append(buckets[p.Category], p)
	}
	if dropped > 0 {
		bctx.Logger.Warn().Int("dropped", dropped).Msg("records with unrecognized category excluded")
	}
	return buckets
}

// Split 在单个品类的记录上做训练/测试划分。
func (s *Splitter) Split(category string, products []*core.Product) Split {
	var sp Split
	for _, p := range products {
		if s.assignTrain(category, p.ID) {
			sp.Train = append(sp.Train, p)
		} else {
			sp.Test = append(sp.Test, p)
		}
	}
	return sp
}

func (s *Splitter) assignTrain(category, productID string) bool {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s:%s", s.Seed, category, productID)
	u := h.Sum64()
	return float64(u)/float64(^uint64(0)) < s.TrainRatio
}
