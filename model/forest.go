package model

import (
	"math"
	"math/rand"

	"github.com/BDP-team7/BDP-team7/core"
)

// RandomForest 实现了随机森林二分类器：bootstrap 采样 + 随机特征子集的
// CART 决策树集成，多数投票输出标签。
//
// 工程特征：
//   - 确定性：同一 Seed 下采样序列固定，重复运行结果完全一致
//   - 退化容忍：训练集只有单一标签时所有树退化为同值叶子，Fit 不报错
//     （是否参与训练由上层 Trainer 把关）
type RandomForest struct {
	// NumTrees 树的数量，默认 20。
	NumTrees int
	// MaxDepth 单棵树最大深度，默认 10。
	MaxDepth int
	// MinLeaf 叶子节点最小样本数，默认 1。
	MinLeaf int
	// Seed 随机种子，驱动 bootstrap 与特征子集采样。
	Seed int64

	trees []*treeNode
}

// NewRandomForest 创建默认参数的随机森林。
func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NumTrees: 20,
		MaxDepth: 10,
		MinLeaf:  1,
		Seed:     seed,
	}
}

// WithNumTrees 设置树的数量。
func (f *RandomForest) WithNumTrees(n int) *RandomForest {
	f.NumTrees = n
	return f
}

// WithMaxDepth 设置单棵树最大深度。
func (f *RandomForest) WithMaxDepth(d int) *RandomForest {
	f.MaxDepth = d
	return f
}

func (f *RandomForest) Name() string { return "random_forest" }

// Fit 在训练子集上拟合森林。
func (f *RandomForest) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 || len(features) != len(labels) {
		return core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalid, "fit requires non-empty, aligned features and labels")
	}

	dims := len(features[0])
	for _, row := range features {
		if len(row) != dims {
			return core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalid, "feature vectors have inconsistent dimensions")
		}
	}

	// 每次分裂考察 sqrt(dims) 个随机特征，随机森林的常规默认。
	mtry := int(math.Sqrt(float64(dims)))
	if mtry < 1 {
		mtry = 1
	}

	rng := rand.New(rand.NewSource(f.Seed))
	f.trees = make([]*treeNode, f.NumTrees)
	for t := 0; t < f.NumTrees; t++ {
		idx := make([]int, len(features))
		for i := range idx {
			idx[i] = rng.Intn(len(features))
		}
		f.trees[t] = growTree(features, labels, idx, f.MaxDepth, f.MinLeaf, mtry, rng)
	}
	return nil
}

// Predict 多数投票输出标签；未拟合时返回 0。
func (f *RandomForest) Predict(features []float64) int {
	if len(f.trees) == 0 {
		return 0
	}
	votes := 0
	for _, t := range f.trees {
		votes += t.predict(features)
	}
	if votes*2 >= len(f.trees) {
		return 1
	}
	return 0
}
