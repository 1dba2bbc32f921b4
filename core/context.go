package core

import "github.com/rs/zerolog"

// BatchContext 承载一次批处理运行的全局配置与只读共享状态，贯穿整个 Pipeline 透传。
// 与可变的共享字段不同，它在运行开始时构造完成，各阶段只读不写；
// 阶段自身的产物（词表、编码器）在阶段内冻结后同样只读共享。
type BatchContext struct {
	// Seed 是全局随机种子：训练/测试划分与分类器内部采样都由它派生，
	// 保证相同输入 + 相同种子下整条管道可复现。
	Seed int64

	// TrainRatio 是每个品类内训练集占比（默认 0.7）。
	TrainRatio float64

	// Categories 是参与训练/评估的品类全集，之外的品类值会被静默剔除（仅记日志）。
	Categories []string

	// Logger 是结构化日志器，由入口构造后注入。
	Logger zerolog.Logger

	// Params 运行级附加参数，供自定义 Node 使用。
	Params map[string]any
}

// KnownCategory 判断品类值是否属于本次运行的品类全集。
func (bctx *BatchContext) KnownCategory(category string) bool {
	for _, c := range bctx.Categories {
		if c == category {
			return true
		}
	}
	return false
}
