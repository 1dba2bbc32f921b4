// Package store 是预测结果的外部落地边界（ResultWriter）。
// CSV 是规范输出；Redis 为可选附加 Sink，供下游服务按商品查询预测结果。
package store

import (
	"context"

	"github.com/BDP-team7/BDP-team7/core"
)

// Sink 是预测落盘的统一接口。
// Write 接收四个品类测试集预测的并集，一次运行调用一次。
type Sink interface {
	Name() string
	Write(ctx context.Context, preds []core.Prediction) error
	Close() error
}
