package feature

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pipeline"
)

// CountVectorizer 将记录的关键词列表映射为词表上的定长计数向量。
// 向量下标由词表的频次排名给定；不在词表内的 token 直接丢弃。
type CountVectorizer struct {
	Vocab *Vocabulary
}

// Transform 归一化并过滤 token 列表，返回保留的 token 与计数向量。
// 没有任何 token 命中词表时返回零向量，不视为错误。
func (cv *CountVectorizer) Transform(tokens []string) ([]string, []float64) {
	kept := make([]string, 0, len(tokens))
	vec := make([]float64, cv.Vocab.Size())
	for _, tok := range tokens {
		norm := NormalizeToken(tok)
		if norm == "" {
			continue
		}
		if i, ok := cv.Vocab.Index[norm]; ok {
			kept = append(kept, norm)
			vec[i]++
		}
	}
	return kept, vec
}

// VectorizeNode 是关键词向量化阶段。它先对整个语料做一次完整扫描冻结词表
// —— 这是管道中唯一要求全量先行的同步点 —— 再逐条记录生成计数向量。
type VectorizeNode struct {
	// Size 词表容量，<=0 时取 DefaultVocabularySize。
	Size int

	// Vocab 是本次运行冻结的词表，Process 结束后只读。
	Vocab *Vocabulary
}

func (n *VectorizeNode) Name() string        { return "feature.vectorize" }
func (n *VectorizeNode) Kind() pipeline.Kind { return pipeline.KindVectorize }

func (n *VectorizeNode) Process(
	_ context.Context,
	bctx *core.BatchContext,
	products []*core.Product,
) ([]*core.Product, error) {
	n.Vocab = BuildVocabulary(products, n.Size)
	bctx.Logger.Info().Int("vocabulary_size", n.Vocab.Size()).Msg("keyword vocabulary frozen")

	cv := &CountVectorizer{Vocab: n.Vocab}
	for _, p := range products {
		p.FilteredKeywords, p.KeywordVec = cv.Transform(p.Keywords)
	}
	return products, nil
}
