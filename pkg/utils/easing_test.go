package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 测试所有缓动函数的端点值
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]EasingFunc{
		"Linear":     EaseLinear,
		"OutCubic":   EaseOutCubic,
		"InOutCubic": EaseInOutCubic,
		"OutQuad":    EaseOutQuad,
		"InOutQuad":  EaseInOutQuad,
		"InOutSine":  EaseInOutSine,
		"OutBack":    EaseOutBack,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutSineMidpoint 中点应为 0.5
func TestEaseInOutSineMidpoint(t *testing.T) {
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > 0.001 {
		t.Errorf("EaseInOutSine(0.5) = %v, 期望 0.5", got)
	}
}

// TestEaseOutBackOvershoots 回弹曲线在终点前会超过 1
func TestEaseOutBackOvershoots(t *testing.T) {
	if got := EaseOutBack(0.8); got <= 1 {
		t.Errorf("EaseOutBack(0.8) = %v, 期望 > 1", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{20, 0, 0.25, 15},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 did not clamp into [0, 1]")
	}
}
