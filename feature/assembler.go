package feature

import (
	"context"
	"fmt"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pipeline"
)

// AssembleNode 是特征拼接阶段：按固定顺序把 brand one-hot、colors one-hot、
// 关键词计数向量与数值字段串接为最终特征向量，即分类器的唯一输入。
//
// 数值字段顺序固定为：
// price, discountRate, conversionRate, trending, totalSales, views, likes, rating, ratingCount
//
// 与 Join 阶段的补缺省值不同，此处任何数值字段缺失都是致命的 schema 错误：
// 能走到拼接阶段的记录必须字段齐全。
type AssembleNode struct{}

func (n *AssembleNode) Name() string        { return "feature.assemble" }
func (n *AssembleNode) Kind() pipeline.Kind { return pipeline.KindAssemble }

func (n *AssembleNode) Process(
	_ context.Context,
	_ *core.BatchContext,
	products []*core.Product,
) ([]*core.Product, error) {
	for _, p := range products {
		vec, err := Assemble(p)
		if err != nil {
			return nil, err
		}
		p.Features = vec
	}
	return products, nil
}

// Assemble 为单条记录生成特征向量。
func Assemble(p *core.Product) ([]float64, error) {
	numeric := []struct {
		name  string
		value float64
	}{
		{"price", p.Price},
		{"discountRate", p.DiscountRate},
		{"conversionRate", p.ConversionRate},
		{"trending", p.Trending},
		{"totalSales", p.TotalSales},
		{"views", p.Views},
		{"likes", p.Likes},
		{"rating", p.Rating},
		{"ratingCount", p.RatingCount},
	}

	vec := make([]float64, 0, len(p.BrandVec)+len(p.ColorsVec)+len(p.KeywordVec)+len(numeric))
	vec = append(vec, p.BrandVec...)
	vec = append(vec, p.ColorsVec...)
	vec = append(vec, p.KeywordVec...)
	for _, f := range numeric {
		if core.Missing(f.value) {
			return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeSchema,
				fmt.Sprintf("product %s: numeric field %s is missing", p.ID, f.name))
		}
		vec = append(vec, f.value)
	}
	return vec, nil
}
