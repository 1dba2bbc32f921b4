package model

// Classifier 是二分类器的最小抽象：输入特征向量，输出 0/1 标签。
// 管道只依赖 fit/predict 两个能力，任何集成/树模型实现都可以替换，
// 内部算法对管道不可见。
type Classifier interface {
	Name() string

	// Fit 在训练子集上拟合模型。features 与 labels 等长，labels 取值 {0,1}。
	Fit(features [][]float64, labels []int) error

	// Predict 对单条特征向量输出预测标签 {0,1}。
	Predict(features []float64) int
}
