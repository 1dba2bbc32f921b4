package feature

import (
	"sort"
	"strings"

	"github.com/BDP-team7/BDP-team7/core"
)

// DefaultVocabularySize 是关键词词表的默认容量（全局频次 Top-K）。
const DefaultVocabularySize = 100

// NormalizeToken 归一化单个关键词 token：转小写后，
// 仅保留谚文音节（가-힣）与 ASCII 字母，其余字符全部剔除。
// 归一化后为空串的 token 由调用方丢弃。
func NormalizeToken(tok string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tok) {
		if (r >= '가' && r <= '힣') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Vocabulary 是整个语料上冻结的关键词词表：Top-K 归一化 token，
// 向量下标即频次排名。构建一次后跨品类只读共享。
type Vocabulary struct {
	Tokens []string
	Index  map[string]int
}

// BuildVocabulary 对全量记录的关键词做一次完整扫描：
// 逐条展开 token，归一化、计数，取全局频次前 size 个构成词表。
// 平频 token 按字节序升序决定先后，保证结果跨运行确定。
func BuildVocabulary(products []*core.Product, size int) *Vocabulary {
	if size <= 0 {
		size = DefaultVocabularySize
	}

	counts := make(map[string]int)
	for _, p := range products {
		for _, tok := range p.Keywords {
			norm := NormalizeToken(tok)
			if norm == "" {
				continue
			}
			counts[norm]++
		}
	}

	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	if len(tokens) > size {
		tokens = tokens[:size]
	}

	v := &Vocabulary{
		Tokens: tokens,
		Index:  make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		v.Index[tok] = i
	}
	return v
}

// Size 返回词表实际容量（语料 token 种数不足 K 时小于 K）。
func (v *Vocabulary) Size() int { return len(v.Tokens) }

// Contains 判断归一化 token 是否在词表内。
func (v *Vocabulary) Contains(tok string) bool {
	_, ok := v.Index[tok]
	return ok
}
