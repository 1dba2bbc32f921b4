package eval

import (
	"math"

	"github.com/BDP-team7/BDP-team7/core"
)

// OverallCategory 是跨品类汇总行的品类名。
const OverallCategory = "overall"

// ConfusionCounts 是以 recommend=1 为正类的混淆矩阵统计。
// Precision/Recall 四舍五入到两位小数，分母为零时取 0.0。
type ConfusionCounts struct {
	Category  string
	TP        int
	FN        int
	FP        int
	TN        int
	Recall    float64
	Precision float64
}

// Confusion 在一组测试集预测上统计混淆矩阵。
func Confusion(category string, preds []core.Prediction) ConfusionCounts {
	c := ConfusionCounts{Category: category}
	for _, p := range preds {
		switch {
		case p.Predicted == 1 && p.Recommend == 1:
			c.TP++
		case p.Predicted == 0 && p.Recommend == 1:
			c.FN++
		case p.Predicted == 1 && p.Recommend == 0:
			c.FP++
		default:
			c.TN++
		}
	}
	if c.TP+c.FN > 0 {
		c.Recall = Round2(float64(c.TP) / float64(c.TP+c.FN))
	}
	if c.TP+c.FP > 0 {
		c.Precision = Round2(float64(c.TP) / float64(c.TP+c.FP))
	}
	return c
}

// Round2 四舍五入到两位小数。
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
