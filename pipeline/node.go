package pipeline

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindPrep      Kind = "prep"      // 预处理阶段：去重、打标、连接、补缺失值
	KindFilter    Kind = "filter"    // 过滤阶段：按表达式剔除不参与训练的记录
	KindEncode    Kind = "encode"    // 编码阶段：类目特征 one-hot
	KindVectorize Kind = "vectorize" // 向量化阶段：关键词词表 + 计数向量
	KindAssemble  Kind = "assemble"  // 拼接阶段：生成最终特征向量
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 products -> 输出 products”的形态：Prep 阶段从数据源生成记录，
// 其余阶段在记录上逐步补齐派生字段，每个阶段返回新的记录集而不是修改共享状态。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		bctx *core.BatchContext,
		products []*core.Product,
	) ([]*core.Product, error)
}
