package pipeline

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
)

// Pipeline 是批处理预处理链的核心抽象：把数据准备逻辑拆成可组合的 Node 链。
// 分品类的训练/评估不在 Pipeline 内，它们要求词表与编码器先行冻结，
// 由上层 runner 在 Pipeline 结束后并行展开。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	bctx *core.BatchContext,
	products []*core.Product,
) ([]*core.Product, error) {
	cur := products
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, bctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
