package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BDP-team7/BDP-team7/core"
)

func TestCSVSinkWrite(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVSink(filepath.Join(dir, "out"))

	preds := []core.Prediction{
		{ProductID: "p1", Category: "shoes", Recommend: 1, Predicted: 1},
		{ProductID: "p2", Category: "pants", Recommend: 0, Predicted: 1},
	}
	if err := sink.Write(context.Background(), preds); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(sink.Path())
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	// utf-8-sig: BOM first
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("output must start with UTF-8 BOM")
	}

	want := "productId,category,recommend,predicted_recommend\n" +
		"p1,shoes,1,1\n" +
		"p2,pants,0,1\n"
	if got := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	preds := []core.Prediction{{ProductID: "p1", Category: "shoes", Recommend: 1, Predicted: 0}}

	if err := sink.Write(context.Background(), preds); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got := sink.Predictions()
	if len(got) != 1 || got[0] != preds[0] {
		t.Errorf("Predictions() = %v, want %v", got, preds)
	}
}
