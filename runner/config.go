package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BDP-team7/BDP-team7/feature"
	"github.com/BDP-team7/BDP-team7/prep"
	"github.com/BDP-team7/BDP-team7/train"
)

// DefaultCategories 是参与训练/评估的四个品类。
var DefaultCategories = []string{"clothes_top", "pants", "shoes", "outers"}

// Config 是一次批处理运行的全部配置。输入/输出位置是固定配置值，
// 不走命令行 flag。
type Config struct {
	RankingSourcePath string `yaml:"ranking_source_path"`
	KeywordSourcePath string `yaml:"keyword_source_path"`
	OutputDir         string `yaml:"output_dir"`

	Seed               int64    `yaml:"seed"`
	TrainRatio         float64  `yaml:"train_ratio"`
	VocabularySize     int      `yaml:"vocabulary_size"`
	RecommendThreshold int      `yaml:"recommend_threshold"`
	Categories         []string `yaml:"categories"`

	// Filter 是可选的 CEL 记录过滤表达式，空串表示不过滤。
	Filter string `yaml:"filter"`

	// Redis 非空 Addr 时启用附加的 Redis Sink。
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig 是可选 Redis Sink 的连接配置。
type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

// LoadConfig 从 YAML 文件加载运行配置并填充默认值。
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if cfg.RankingSourcePath == "" || cfg.KeywordSourcePath == "" {
		return nil, fmt.Errorf("config: ranking_source_path and keyword_source_path are required")
	}
	return &cfg, nil
}

// ApplyDefaults 为未设置的字段填充默认值。
func (c *Config) ApplyDefaults() {
	if c.Seed == 0 {
		c.Seed = train.DefaultSeed
	}
	if c.TrainRatio <= 0 || c.TrainRatio >= 1 {
		c.TrainRatio = 0.7
	}
	if c.VocabularySize <= 0 {
		c.VocabularySize = feature.DefaultVocabularySize
	}
	if c.RecommendThreshold <= 0 {
		c.RecommendThreshold = prep.DefaultRecommendThreshold
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories
	}
	if c.OutputDir == "" {
		c.OutputDir = "./data/output"
	}
}
