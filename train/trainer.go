package train

import (
	"context"
	"hash/fnv"

	"golang.org/x/sync/errgroup"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/eval"
	"github.com/BDP-team7/BDP-team7/model"
)

// CategoryResult 是单个品类分支的完整产出：子集规模、模型、
// 训练/测试指标与测试集预测。
type CategoryResult struct {
	Category string
	Split    Split

	Model        model.Classifier
	TrainMetrics eval.Metrics
	TestMetrics  eval.Metrics

	// Predictions 只含测试子集，训练子集不对外落盘。
	Predictions []core.Prediction

	// Skipped 表示该品类因退化（空子集或训练集单一标签）被跳过。
	Skipped    bool
	SkipReason string
}

// Trainer 并行执行四个品类分支：划分、拟合、评估、产出预测。
//
// 并发模型：词表与编码器在进入 Trainer 前已冻结，各品类分支之间
// 不再读写任何共享可变状态，因此一个品类一个 goroutine，无需加锁；
// 结果按品类下标写入预分配切片，顺序与 Splitter.Categories 一致。
type Trainer struct {
	Splitter *Splitter

	// NewClassifier 为品类构造分类器；为 nil 时使用默认随机森林，
	// 种子由全局种子与品类名派生，品类之间互不影响。
	NewClassifier func(category string, seed int64) model.Classifier
}

// Run 执行全部品类分支。只有致命错误（如特征维度不一致）会中断运行；
// 退化品类以 Skipped 标记返回。
func (t *Trainer) Run(ctx context.Context, bctx *core.BatchContext, buckets map[string][]*core.Product) ([]CategoryResult, error) {
	results := make([]CategoryResult, len(t.Splitter.Categories))

	eg, ctx := errgroup.WithContext(ctx)
	for i, category := range t.Splitter.Categories {
		i, category := i, category
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := t.runCategory(bctx, category, buckets[category])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (t *Trainer) runCategory(bctx *core.BatchContext, category string, products []*core.Product) (CategoryResult, error) {
	res := CategoryResult{Category: category}

	if len(products) == 0 {
		res.Skipped = true
		res.SkipReason = "empty category subset"
		bctx.Logger.Warn().Str("category", category).Msg("category skipped: no records after filtering")
		return res, nil
	}

	res.Split = t.Splitter.Split(category, products)
	if len(res.Split.Train) == 0 {
		res.Skipped = true
		res.SkipReason = "empty train subset"
		bctx.Logger.Warn().Str("category", category).Msg("category skipped: empty train subset")
		return res, nil
	}

	features := make([][]float64, len(res.Split.Train))
	labels := make([]int, len(res.Split.Train))
	positive := 0
	for i, p := range res.Split.Train {
		features[i] = p.Features
		labels[i] = p.Recommend
		positive += p.Recommend
	}
	if positive == 0 || positive == len(labels) {
		res.Skipped = true
		res.SkipReason = "single-class train subset"
		bctx.Logger.Warn().Str("category", category).Int("train_size", len(labels)).
			Msg("category skipped: train subset contains a single label value")
		return res, nil
	}

	clf := t.newClassifier(category)
	if err := clf.Fit(features, labels); err != nil {
		return res, err
	}
	res.Model = clf

	res.TrainMetrics = evaluateSubset(clf, res.Split.Train)
	res.TestMetrics = evaluateSubset(clf, res.Split.Test)

	res.Predictions = make([]core.Prediction, 0, len(res.Split.Test))
	for _, p := range res.Split.Test {
		res.Predictions = append(res.Predictions, core.Prediction{
			ProductID: p.ID,
			Category:  p.Category,
			Recommend: p.Recommend,
			Predicted: clf.Predict(p.Features),
		})
	}

	bctx.Logger.Info().Str("category", category).
		Int("train_size", len(res.Split.Train)).Int("test_size", len(res.Split.Test)).
		Float64("test_accuracy", res.TestMetrics.Accuracy).
		Msg("category branch finished")
	return res, nil
}

func (t *Trainer) newClassifier(category string) model.Classifier {
	seed := t.Splitter.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	seed += int64(hashCategory(category))
	if t.NewClassifier != nil {
		return t.NewClassifier(category, seed)
	}
	return model.NewRandomForest(seed)
}

func evaluateSubset(clf model.Classifier, products []*core.Product) eval.Metrics {
	truth := make([]int, len(products))
	pred := make([]int, len(products))
	for i, p := range products {
		truth[i] = p.Recommend
		pred[i] = clf.Predict(p.Features)
	}
	return eval.Evaluate(truth, pred)
}

func hashCategory(category string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(category))
	return h.Sum32()
}
