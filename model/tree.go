package model

import (
	"math/rand"
	"sort"
)

// treeNode 是 CART 决策树节点：内部节点保存 (特征, 阈值) 分裂规则，
// 叶子节点保存多数类标签。
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	label     int
}

func (n *treeNode) predict(x []float64) int {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.label
}

// growTree 在 idx 指向的样本子集上递归构建决策树。
// 分裂准则为 gini 不纯度，每个节点只在 mtry 个随机特征中寻找最优分裂。
func growTree(features [][]float64, labels []int, idx []int, depth, minLeaf, mtry int, rng *rand.Rand) *treeNode {
	pos := 0
	for _, i := range idx {
		pos += labels[i]
	}

	// 终止条件：纯节点、样本不足或达到深度上限。
	if pos == 0 || pos == len(idx) || len(idx) < 2*minLeaf || depth <= 0 {
		return leafNode(pos, len(idx))
	}

	feat, threshold, ok := bestSplit(features, labels, idx, mtry, rng)
	if !ok {
		return leafNode(pos, len(idx))
	}

	var left, right []int
	for _, i := range idx {
		if features[i][feat] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < minLeaf || len(right) < minLeaf {
		return leafNode(pos, len(idx))
	}

	return &treeNode{
		feature:   feat,
		threshold: threshold,
		left:      growTree(features, labels, left, depth-1, minLeaf, mtry, rng),
		right:     growTree(features, labels, right, depth-1, minLeaf, mtry, rng),
	}
}

func leafNode(pos, total int) *treeNode {
	label := 0
	if pos*2 >= total && pos > 0 {
		label = 1
	}
	return &treeNode{leaf: true, label: label}
}

// bestSplit 在 mtry 个随机特征上扫描所有候选阈值，返回 gini 增益最大的分裂。
func bestSplit(features [][]float64, labels []int, idx []int, mtry int, rng *rand.Rand) (int, float64, bool) {
	dims := len(features[idx[0]])
	perm := rng.Perm(dims)

	bestGini := gini(countPos(labels, idx), len(idx))
	bestFeat, bestThreshold := -1, 0.0

	for _, feat := range perm[:mtry] {
		sorted := make([]int, len(idx))
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool {
			return features[sorted[a]][feat] < features[sorted[b]][feat]
		})

		totalPos := countPos(labels, sorted)
		leftPos := 0
		for k := 0; k < len(sorted)-1; k++ {
			leftPos += labels[sorted[k]]
			cur, next := features[sorted[k]][feat], features[sorted[k+1]][feat]
			if cur == next {
				continue // 同值样本不能在中间切开
			}
			nl, nr := k+1, len(sorted)-k-1
			weighted := (float64(nl)*gini(leftPos, nl) + float64(nr)*gini(totalPos-leftPos, nr)) / float64(len(sorted))
			if weighted < bestGini {
				bestGini = weighted
				bestFeat = feat
				bestThreshold = (cur + next) / 2
			}
		}
	}

	if bestFeat < 0 {
		return 0, 0, false
	}
	return bestFeat, bestThreshold, true
}

func countPos(labels []int, idx []int) int {
	pos := 0
	for _, i := range idx {
		pos += labels[i]
	}
	return pos
}

// gini 计算二分类 gini 不纯度：1 - p0^2 - p1^2。
func gini(pos, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(pos) / float64(total)
	return 1 - p*p - (1-p)*(1-p)
}
