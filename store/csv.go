package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BDP-team7/BDP-team7/core"
)

// DefaultOutputFile 是预测结果的默认文件名。
const DefaultOutputFile = "predict_output.csv"

// CSVSink 把预测并集写为带 BOM 的 UTF-8 CSV（即 utf-8-sig，
// 兼容以本地编码打开 CSV 的电子表格软件）。
type CSVSink struct {
	Dir      string
	FileName string
}

func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{Dir: dir, FileName: DefaultOutputFile}
}

func (s *CSVSink) Name() string { return "csv" }

// Path 返回输出文件完整路径。
func (s *CSVSink) Path() string {
	name := s.FileName
	if name == "" {
		name = DefaultOutputFile
	}
	return filepath.Join(s.Dir, name)
}

func (s *CSVSink) Write(_ context.Context, preds []core.Prediction) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return ioErr("mkdir "+s.Dir, err)
	}
	f, err := os.Create(s.Path())
	if err != nil {
		return ioErr("create "+s.Path(), err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return ioErr("write bom", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"productId", "category", "recommend", "predicted_recommend"}); err != nil {
		return ioErr("write header", err)
	}
	for _, p := range preds {
		row := []string{p.ProductID, p.Category, strconv.Itoa(p.Recommend), strconv.Itoa(p.Predicted)}
		if err := w.Write(row); err != nil {
			return ioErr("write row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioErr("flush", err)
	}
	return nil
}

func (s *CSVSink) Close() error { return nil }

func ioErr(op string, err error) error {
	return core.NewDomainError(core.ModuleStore, core.ErrorCodeIO, fmt.Sprintf("%s: %v", op, err))
}
