package player

import (
	"testing"

	"evaluator/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		avg, sleep float64
		want       Level
	}{
		{6.0, 8.0, Pro},
		{4.0, 7.0, SemiPro},
		{2.0, 6.0, Amateur},
		{6.0, 7.5, Pro},
		{6.0, 9.0, Pro},
		{6.0, 9.5, SemiPro},
		{6.0, 7.2, SemiPro},
		{6.0, 6.9, Amateur},
		{3.0, 7.0, SemiPro},
		{2.99, 8.0, Amateur},
	}

	for _, tt := range tests {
		if got := Classify(tt.avg, tt.sleep); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.avg, tt.sleep, got, tt.want)
		}
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		avg, sleep, want float64
	}{
		{5.0, 7.0, 50.0},
		{5.0, 8.0, 55.0},
		{5.0, 6.0, 45.0},
		{0, 7.0, 0},
	}
	for _, tt := range tests {
		if got := Readiness(tt.avg, tt.sleep); got != tt.want {
			t.Errorf("Readiness(%v, %v) = %v, want %v", tt.avg, tt.sleep, got, tt.want)
		}
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		name       string
		avg, sleep float64
		want       string
	}{
		{"short sleep", 7.0, 6.5, config.AdviceBuildBase},
		{"low training", 2.0, 8.0, config.AdviceBuildBase},
		{"pro load oversleeping", 6.0, 9.5, config.AdviceImproveSleep},
		{"pro load light sleep", 6.0, 7.2, config.AdviceImproveSleep},
		{"pro window low edge", 6.0, 7.5, config.AdviceGoodBalance},
		{"pro window high edge", 6.0, 9.0, config.AdviceGoodBalance},
		{"semi pro", 4.0, 7.0, config.AdviceGoodBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advise(tt.avg, tt.sleep); got != tt.want {
				t.Errorf("Advise(%v, %v) = %q, want %q", tt.avg, tt.sleep, got, tt.want)
			}
		})
	}
}

// TestAdviceIndependentOfLevel pins the case where a Semi-Pro level is paired
// with sleep advice because the advice chain does not look at the level.
func TestAdviceIndependentOfLevel(t *testing.T) {
	eval := Evaluate(6.5, 9.2)
	if eval.Level != SemiPro {
		t.Errorf("level = %v, want Semi-Pro", eval.Level)
	}
	if eval.Advice != config.AdviceImproveSleep {
		t.Errorf("advice = %q, want %q", eval.Advice, config.AdviceImproveSleep)
	}
}
