// Package eval 计算分类质量指标：准确率、按类支持度加权的精确率/召回率，
// 以及混淆矩阵统计。
package eval

// Metrics 是一个子集（训练或测试）上的质量指标。
// Precision/Recall 为加权口径：对 {0,1} 两个类分别计算后，
// 按各类在真实标签中的占比加权平均。
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
}

// Evaluate 对齐的真实标签与预测标签计算指标。空输入返回零值。
func Evaluate(truth, pred []int) Metrics {
	if len(truth) == 0 || len(truth) != len(pred) {
		return Metrics{}
	}

	correct := 0
	// counts[真实][预测]
	var counts [2][2]int
	for i := range truth {
		if truth[i] == pred[i] {
			correct++
		}
		counts[truth[i]][pred[i]]++
	}

	m := Metrics{Accuracy: float64(correct) / float64(len(truth))}
	total := float64(len(truth))
	for class := 0; class <= 1; class++ {
		support := counts[class][0] + counts[class][1]
		if support == 0 {
			continue
		}
		tp := counts[class][class]
		predicted := counts[0][class] + counts[1][class]

		precision := 0.0
		if predicted > 0 {
			precision = float64(tp) / float64(predicted)
		}
		recall := float64(tp) / float64(support)

		weight := float64(support) / total
		m.Precision += weight * precision
		m.Recall += weight * recall
	}
	return m
}
