package model

import (
	"testing"
)

// separable fixture: label is 1 iff the first dimension exceeds 0.5
func separableData() ([][]float64, []int) {
	var features [][]float64
	var labels []int
	for i := 0; i < 40; i++ {
		x := float64(i) / 40.0
		features = append(features, []float64{x, float64(i % 3)})
		if x > 0.5 {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}
	return features, labels
}

func TestRandomForestFitPredict(t *testing.T) {
	features, labels := separableData()

	rf := NewRandomForest(42)
	if err := rf.Fit(features, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	correct := 0
	for i, x := range features {
		if rf.Predict(x) == labels[i] {
			correct++
		}
	}
	// trivially separable problem: the forest must get nearly everything right
	if acc := float64(correct) / float64(len(labels)); acc < 0.9 {
		t.Fatalf("training accuracy = %.2f, want >= 0.9", acc)
	}
}

func TestRandomForestDeterminism(t *testing.T) {
	features, labels := separableData()

	a := NewRandomForest(7)
	b := NewRandomForest(7)
	if err := a.Fit(features, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if err := b.Fit(features, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	probe := [][]float64{{0.1, 0}, {0.3, 1}, {0.55, 2}, {0.9, 0}}
	for _, x := range probe {
		if a.Predict(x) != b.Predict(x) {
			t.Fatalf("same seed produced different predictions for %v", x)
		}
	}
}

func TestRandomForestSingleClass(t *testing.T) {
	// single-label train data must not crash; every prediction is that label
	features := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	labels := []int{1, 1, 1}

	rf := NewRandomForest(1)
	if err := rf.Fit(features, labels); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if got := rf.Predict([]float64{0, 0}); got != 1 {
		t.Errorf("Predict() = %d, want 1", got)
	}
}

func TestRandomForestInvalidInput(t *testing.T) {
	rf := NewRandomForest(1)
	if err := rf.Fit(nil, nil); err == nil {
		t.Error("Fit(empty) must fail")
	}
	if err := rf.Fit([][]float64{{1, 2}, {1}}, []int{0, 1}); err == nil {
		t.Error("Fit with ragged feature vectors must fail")
	}
}
