package store

import (
	"context"
	"sync"

	"github.com/BDP-team7/BDP-team7/core"
)

// MemorySink 是内存实现的 Sink，用于测试/开发/原型。
type MemorySink struct {
	mu    sync.Mutex
	preds []core.Prediction
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (m *MemorySink) Name() string { return "memory" }

func (m *MemorySink) Write(_ context.Context, preds []core.Prediction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preds = append(m.preds, preds...)
	return nil
}

// Predictions 返回已写入预测的副本。
func (m *MemorySink) Predictions() []core.Prediction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Prediction, len(m.preds))
	copy(out, m.preds)
	return out
}

func (m *MemorySink) Close() error { return nil }
