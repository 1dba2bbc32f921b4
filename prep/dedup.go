package prep

import "github.com/BDP-team7/BDP-team7/core"

// Deduplicate 将每个商品的多条榜单观测收敛为时间上最新的一条。
// 同一商品出现相同最大日期时，保留名次更小（更靠前）的那条；
// 名次也相同则保留先出现的，保证结果对输入顺序之外的因素确定。
// 输出顺序按商品首次出现的顺序排列。
func Deduplicate(rankings []core.RankingRecord) []core.RankingRecord {
	latest := make(map[string]core.RankingRecord, len(rankings))
	order := make([]string, 0, len(rankings))

	for _, r := range rankings {
		cur, ok := latest[r.ProductID]
		if !ok {
			latest[r.ProductID] = r
			order = append(order, r.ProductID)
			continue
		}
		if r.Date.After(cur.Date) {
			latest[r.ProductID] = r
			continue
		}
		if r.Date.Equal(cur.Date) && r.Ranking < cur.Ranking {
			latest[r.ProductID] = r
		}
	}

	out := make([]core.RankingRecord, 0, len(order))
	for _, id := range order {
		out = append(out, latest[id])
	}
	return out
}

// Label 按名次派生二值推荐标签：名次 <= threshold 为 1，否则 0。
// 这是唯一的标签生成规则。
func Label(ranking, threshold int) int {
	if ranking <= threshold {
		return 1
	}
	return 0
}
