package eval

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEvaluate(t *testing.T) {
	t.Run("perfect predictions", func(t *testing.T) {
		truth := []int{0, 1, 0, 1}
		m := Evaluate(truth, truth)
		if m.Accuracy != 1 || m.Precision != 1 || m.Recall != 1 {
			t.Errorf("metrics = %+v, want all 1.0", m)
		}
	})

	t.Run("weighted metrics", func(t *testing.T) {
		// truth: three 1s, one 0; predictions miss one positive
		truth := []int{1, 1, 1, 0}
		pred := []int{1, 1, 0, 0}
		m := Evaluate(truth, pred)

		if !almostEqual(m.Accuracy, 0.75) {
			t.Errorf("accuracy = %v, want 0.75", m.Accuracy)
		}
		// class1: precision 2/2, recall 2/3, weight 3/4
		// class0: precision 1/2, recall 1/1, weight 1/4
		if want := 0.75*1.0 + 0.25*0.5; !almostEqual(m.Precision, want) {
			t.Errorf("weighted precision = %v, want %v", m.Precision, want)
		}
		if want := 0.75*(2.0/3.0) + 0.25*1.0; !almostEqual(m.Recall, want) {
			t.Errorf("weighted recall = %v, want %v", m.Recall, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if m := Evaluate(nil, nil); m != (Metrics{}) {
			t.Errorf("metrics = %+v, want zero value", m)
		}
	})
}
