package config

import (
	"github.com/BDP-team7/BDP-team7/feature"
	"github.com/BDP-team7/BDP-team7/pipeline"
	"github.com/BDP-team7/BDP-team7/pkg/conv"
	"github.com/BDP-team7/BDP-team7/prep"
)

// DefaultFactory 返回一个包含所有内置变换 Node 的默认工厂。
// 数据源相关的 prep.join 依赖已读入的记录，由 runner 以代码方式置于链首，
// 不通过配置构建。
func DefaultFactory() *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("prep.filter", buildFilterNode)
	factory.Register("feature.encode", buildEncodeNode)
	factory.Register("feature.vectorize", buildVectorizeNode)
	factory.Register("feature.assemble", buildAssembleNode)

	return factory
}

func buildFilterNode(config map[string]any) (pipeline.Node, error) {
	return &prep.FilterNode{
		Expr: conv.ConfigGet[string](config, "expr", ""),
	}, nil
}

func buildEncodeNode(map[string]any) (pipeline.Node, error) {
	return &feature.EncodeNode{}, nil
}

func buildVectorizeNode(config map[string]any) (pipeline.Node, error) {
	return &feature.VectorizeNode{
		Size: conv.ConfigGetInt(config, "size", feature.DefaultVocabularySize),
	}, nil
}

func buildAssembleNode(map[string]any) (pipeline.Node, error) {
	return &feature.AssembleNode{}, nil
}
