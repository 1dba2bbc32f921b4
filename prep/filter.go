package prep

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pipeline"
	"github.com/BDP-team7/BDP-team7/pkg/dsl"
)

// FilterNode 是一个可选的过滤 Node：按 CEL 表达式剔除不参与训练的记录。
// 表达式为空时节点是恒等变换，不改变核心管道语义。
//
// 示例：
//
//	&prep.FilterNode{Expr: `product.price > 0.0 && product.views >= 100.0`}
type FilterNode struct {
	Expr string
}

func (n *FilterNode) Name() string        { return "prep.filter" }
func (n *FilterNode) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *FilterNode) Process(
	_ context.Context,
	bctx *core.BatchContext,
	products []*core.Product,
) ([]*core.Product, error) {
	if n.Expr == "" {
		return products, nil
	}

	eval, err := dsl.NewEval(n.Expr)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleTrain, core.ErrorCodeInvalid, "filter expression: "+err.Error())
	}

	kept := make([]*core.Product, 0, len(products))
	for _, p := range products {
		ok, err := eval.Evaluate(p)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleTrain, core.ErrorCodeInvalid, "filter eval: "+err.Error())
		}
		if ok {
			kept = append(kept, p)
		}
	}
	if dropped := len(products) - len(kept); dropped > 0 {
		bctx.Logger.Info().Int("dropped", dropped).Str("expr", n.Expr).Msg("filter node dropped records")
	}
	return kept, nil
}
