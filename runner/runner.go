// Package runner 编排一次完整的批处理运行：
// 读源 → 预处理链（去重/打标/连接/过滤/编码/向量化/拼接）→
// 分品类并行训练评估 → 混淆统计 → 预测并集落盘 → 结构化报告。
package runner

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/dataset"
	"github.com/BDP-team7/BDP-team7/eval"
	"github.com/BDP-team7/BDP-team7/feature"
	"github.com/BDP-team7/BDP-team7/pipeline"
	"github.com/BDP-team7/BDP-team7/prep"
	"github.com/BDP-team7/BDP-team7/report"
	"github.com/BDP-team7/BDP-team7/store"
	"github.com/BDP-team7/BDP-team7/train"
)

// Runner 持有一次运行的配置与落盘 Sink。
type Runner struct {
	cfg    *Config
	logger zerolog.Logger
	sinks  []store.Sink
}

// New 创建 Runner。CSV Sink 始终启用；配置了 Redis 时附加 Redis Sink。
func New(cfg *Config, logger zerolog.Logger) (*Runner, error) {
	cfg.ApplyDefaults()
	r := &Runner{cfg: cfg, logger: logger}
	r.sinks = append(r.sinks, store.NewCSVSink(cfg.OutputDir))
	if cfg.Redis.Addr != "" {
		rs, err := store.NewRedisSink(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		r.sinks = append(r.sinks, rs)
	}
	return r, nil
}

// Close 释放所有 Sink 资源。
func (r *Runner) Close() error {
	var first error
	for _, s := range r.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Run 执行整条管道。运行一次到底，没有中途取消的恢复语义：
// 致命错误直接返回，调用方以非零码退出。
func (r *Runner) Run(ctx context.Context) (*report.Report, error) {
	rankings, err := dataset.ReadRankings(r.cfg.RankingSourcePath)
	if err != nil {
		return nil, err
	}
	keywords, err := dataset.ReadKeywords(r.cfg.KeywordSourcePath)
	if err != nil {
		return nil, err
	}
	r.logger.Info().Int("rankings", len(rankings)).Int("keywords", len(keywords)).Msg("sources loaded")

	bctx := &core.BatchContext{
		Seed:       r.cfg.Seed,
		TrainRatio: r.cfg.TrainRatio,
		Categories: r.cfg.Categories,
		Logger:     r.logger,
	}

	// 预处理链。词表与编码器在链内冻结，是分品类并行前唯一的同步点。
	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&prep.JoinNode{Rankings: rankings, Keywords: keywords, Threshold: r.cfg.RecommendThreshold},
			&prep.FilterNode{Expr: r.cfg.Filter},
			&feature.EncodeNode{},
			&feature.VectorizeNode{Size: r.cfg.VocabularySize},
			&feature.AssembleNode{},
		},
	}
	products, err := p.Run(ctx, bctx, nil)
	if err != nil {
		return nil, err
	}
	r.logger.Info().Int("products", len(products)).Msg("preprocessing finished")

	splitter := &train.Splitter{
		Categories: r.cfg.Categories,
		TrainRatio: r.cfg.TrainRatio,
		Seed:       r.cfg.Seed,
	}
	trainer := &train.Trainer{Splitter: splitter}
	results, err := trainer.Run(ctx, bctx, splitter.Partition(bctx, products))
	if err != nil {
		return nil, err
	}

	return r.publish(ctx, results)
}

// publish 汇总各品类产物：混淆统计、预测并集落盘与最终报告。
func (r *Runner) publish(ctx context.Context, results []train.CategoryResult) (*report.Report, error) {
	rep := &report.Report{}
	var union []core.Prediction

	for _, res := range results {
		rep.Categories = append(rep.Categories, report.CategoryReport{
			Category:   res.Category,
			TrainSize:  len(res.Split.Train),
			TestSize:   len(res.Split.Test),
			Train:      res.TrainMetrics,
			Test:       res.TestMetrics,
			Skipped:    res.Skipped,
			SkipReason: res.SkipReason,
		})
		if res.Skipped {
			continue
		}
		rep.Confusions = append(rep.Confusions, eval.Confusion(res.Category, res.Predictions))
		union = append(union, res.Predictions...)
	}
	rep.Overall = eval.Confusion(eval.OverallCategory, union)
	rep.Rows = len(union)

	for _, s := range r.sinks {
		if err := s.Write(ctx, union); err != nil {
			return nil, err
		}
		r.logger.Info().Str("sink", s.Name()).Int("rows", len(union)).Msg("predictions written")
	}
	if cs, ok := r.sinks[0].(*store.CSVSink); ok {
		rep.OutputPath = cs.Path()
	}
	return rep, nil
}
