package core

import (
	"math"
	"time"
)

// RankingRecord 是商品榜单的一次观测：同一商品随时间可能出现多条。
type RankingRecord struct {
	ProductID string
	Date      time.Time
	Ranking   int // 榜单名次，数值越小越靠前
}

// KeywordRecord 是商品的元信息与关键词数据，每个商品一条。
// 数值字段缺失时以 NaN 表示（CSV 空单元格），由下游按各自契约处理：
// Rating/RatingCount 在 Join 阶段补 0，其余数值字段缺失在特征拼接阶段视为 schema 错误。
type KeywordRecord struct {
	ProductID      string
	BrandName      string
	Colors         string
	Keywords       string // 逗号分隔的关键词串
	Rating         float64
	RatingCount    float64
	Price          float64
	DiscountRate   float64
	ConversionRate float64
	Trending       float64
	TotalSales     float64
	Views          float64
	Likes          float64
	Category       string
}

// Product 是管道内部的统一承载结构（JoinedRecord）：
// 榜单侧只保留派生的 Recommend 标签（原始名次在打标后即被丢弃，
// 不允许进入特征向量），关键词侧保留全部字段，特征各阶段逐步补齐向量。
type Product struct {
	ID        string
	Recommend int // 二值标签：最新名次 <= 阈值为 1，否则 0
	Category  string

	Brand            string
	Colors           string
	Keywords         []string // 解析后的原始 token 列表
	FilteredKeywords []string // 归一化并过滤到词表内的 token

	Rating         float64
	RatingCount    float64
	Price          float64
	DiscountRate   float64
	ConversionRate float64
	Trending       float64
	TotalSales     float64
	Views          float64
	Likes          float64

	BrandVec   []float64 // brand one-hot
	ColorsVec  []float64 // colors one-hot
	KeywordVec []float64 // 词表计数向量
	Features   []float64 // 最终特征向量，分类器的唯一输入
}

// Prediction 是单条测试集预测结果，也是对外落盘的最小单元。
type Prediction struct {
	ProductID string
	Category  string
	Recommend int // ground truth
	Predicted int
}

// Missing 报告数值字段是否缺失（NaN 哨兵）。
func Missing(v float64) bool { return math.IsNaN(v) }
