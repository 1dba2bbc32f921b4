// Package report 把一次运行的评估结果组织为结构化对象，
// 渲染与数据解耦：字段供程序消费，Render 负责人类可读输出。
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/BDP-team7/BDP-team7/eval"
)

// CategoryReport 是单品类的质量报告。
type CategoryReport struct {
	Category  string
	TrainSize int
	TestSize  int

	Train eval.Metrics
	Test  eval.Metrics

	Skipped    bool
	SkipReason string
}

// Report 是整次运行的对外产物：分品类指标、分品类与全量混淆统计、落盘摘要。
type Report struct {
	Categories []CategoryReport
	Confusions []eval.ConfusionCounts // 与 Categories 对齐，跳过的品类不产出行
	Overall    eval.ConfusionCounts

	Rows       int    // 落盘的预测行数
	OutputPath string // 主输出文件路径
}

// Render 输出控制台报告：先训练准确率，再测试准确率，
// 最后是分品类与全量的混淆统计，与原始行为的事实顺序一致。
func (r *Report) Render(w io.Writer) {
	for _, c := range r.Categories {
		if c.Skipped {
			fmt.Fprintf(w, "%s: skipped (%s)\n", title(c.Category), c.SkipReason)
			continue
		}
		fmt.Fprintf(w, "%s Train Accuracy: %.4f (precision=%.4f recall=%.4f)\n",
			title(c.Category), c.Train.Accuracy, c.Train.Precision, c.Train.Recall)
	}
	for _, c := range r.Categories {
		if c.Skipped {
			continue
		}
		fmt.Fprintf(w, "%s Test Accuracy: %.4f (precision=%.4f recall=%.4f)\n",
			title(c.Category), c.Test.Accuracy, c.Test.Precision, c.Test.Recall)
	}

	for _, c := range r.Confusions {
		renderConfusion(w, c)
	}
	renderConfusion(w, r.Overall)

	fmt.Fprintf(w, "\nSaved %d prediction rows to %s\n", r.Rows, r.OutputPath)
}

func renderConfusion(w io.Writer, c eval.ConfusionCounts) {
	fmt.Fprintf(w, "\nCategory: %s\n", c.Category)
	fmt.Fprintf(w, "True Positive (TP): %d\n", c.TP)
	fmt.Fprintf(w, "False Negative (FN): %d\n", c.FN)
	fmt.Fprintf(w, "False Positive (FP): %d\n", c.FP)
	fmt.Fprintf(w, "True Negative (TN): %d\n", c.TN)
	fmt.Fprintf(w, "Recall: %.2f\n", c.Recall)
	fmt.Fprintf(w, "Precision: %.2f\n", c.Precision)
}

// title 把 "clothes_top" 渲染为 "Clothes Top"。
func title(category string) string {
	parts := strings.Split(category, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
