// Package dataset 负责从 CSV 数据源读入榜单与关键词表。
// 带表头，按列名定位；必要列缺失或类型不符是致命的 schema 错误。
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BDP-team7/BDP-team7/core"
	"github.com/BDP-team7/BDP-team7/pkg/conv"
)

// 日期列支持的时间格式，按序尝试。
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ReadRankings 读入榜单数据源：productId, date, ranking。
// 同一商品允许多行（随时间的重复观测）。
func ReadRankings(path string) ([]core.RankingRecord, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}
	cols, err := indexColumns(path, header, []string{"productId", "date", "ranking"})
	if err != nil {
		return nil, err
	}

	records := make([]core.RankingRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[cols["date"]])
		if err != nil {
			return nil, schemaErr(path, i+2, "date", row[cols["date"]])
		}
		ranking, ok := conv.ParseInt(row[cols["ranking"]])
		if !ok || ranking <= 0 {
			return nil, schemaErr(path, i+2, "ranking", row[cols["ranking"]])
		}
		records = append(records, core.RankingRecord{
			ProductID: strings.TrimSpace(row[cols["productId"]]),
			Date:      date,
			Ranking:   ranking,
		})
	}
	return records, nil
}

var keywordColumns = []string{
	"productId", "brandName", "colors", "keywords", "rating", "ratingCount",
	"price", "discountRate", "conversionRate", "trending", "totalSales",
	"views", "likes", "category",
}

// ReadKeywords 读入商品元信息/关键词数据源，每个商品一行。
// 数值单元格为空时以 NaN 表示缺失，由下游按各自契约处理。
func ReadKeywords(path string) ([]core.KeywordRecord, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}
	cols, err := indexColumns(path, header, keywordColumns)
	if err != nil {
		return nil, err
	}

	num := func(row []string, col string) float64 {
		if f, ok := conv.ParseFloat(row[cols[col]]); ok {
			return f
		}
		return math.NaN()
	}

	records := make([]core.KeywordRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, core.KeywordRecord{
			ProductID:      strings.TrimSpace(row[cols["productId"]]),
			BrandName:      strings.TrimSpace(row[cols["brandName"]]),
			Colors:         strings.TrimSpace(row[cols["colors"]]),
			Keywords:       row[cols["keywords"]],
			Rating:         num(row, "rating"),
			RatingCount:    num(row, "ratingCount"),
			Price:          num(row, "price"),
			DiscountRate:   num(row, "discountRate"),
			ConversionRate: num(row, "conversionRate"),
			Trending:       num(row, "trending"),
			TotalSales:     num(row, "totalSales"),
			Views:          num(row, "views"),
			Likes:          num(row, "likes"),
			Category:       strings.TrimSpace(row[cols["category"]]),
		})
	}
	return records, nil
}

func readAll(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeIO,
			fmt.Sprintf("open %s: %v", path, err))
	}
	defer f.Close()

	// 默认的字段数一致性检查保留：参差行是 schema 问题而不是 I/O 问题。
	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		code := core.ErrorCodeIO
		if errors.Is(err, csv.ErrFieldCount) {
			code = core.ErrorCodeSchema
		}
		return nil, nil, core.NewDomainError(core.ModuleDataset, code,
			fmt.Sprintf("read %s: %v", path, err))
	}
	if len(all) == 0 {
		return nil, nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeSchema,
			fmt.Sprintf("%s: empty file, header row required", path))
	}

	header = all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff") // utf-8-sig
	}
	return all[1:], header, nil
}

func indexColumns(path string, header, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeSchema,
				fmt.Sprintf("%s: required column %q absent", path, name))
		}
	}
	return cols, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func schemaErr(path string, line int, col, val string) error {
	return core.NewDomainError(core.ModuleDataset, core.ErrorCodeSchema,
		fmt.Sprintf("%s line %d: column %s has invalid value %q", path, line, col, val))
}
