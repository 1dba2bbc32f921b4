// Package bdp 是商品推荐离线训练管道（Batch Data Pipeline）。
//
// 设计要点：
// - Pipeline-first: 预处理逻辑通过 Node 串联（Prep → Filter → Encode → Vectorize → Assemble）
// - 全局共享状态（关键词词表、类目编码器）在分品类训练前一次性冻结
// - 四个品类分支相互独立，按品类并行训练/评估，最终统一落盘
package bdp

import "github.com/BDP-team7/BDP-team7/pipeline"

// 轻量 facade：便于用户直接 import 根包使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindPrep      = pipeline.KindPrep
	KindFilter    = pipeline.KindFilter
	KindEncode    = pipeline.KindEncode
	KindVectorize = pipeline.KindVectorize
	KindAssemble  = pipeline.KindAssemble
)
