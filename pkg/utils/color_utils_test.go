package utils

import (
	"image/color"
	"testing"
)

func TestFadeColor(t *testing.T) {
	gold := color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xff}

	tests := []struct {
		name  string
		alpha float64
		wantA uint8
	}{
		{"opaque", 1, 0xff},
		{"half", 0.5, 128},
		{"transparent", 0, 0},
		{"clamped above", 2, 0xff},
		{"clamped below", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FadeColor(gold, tt.alpha)
			if got.A != tt.wantA {
				t.Errorf("A = %d, want %d", got.A, tt.wantA)
			}
			if got.R != gold.R || got.G != gold.G || got.B != gold.B {
				t.Errorf("RGB changed: %+v", got)
			}
		})
	}

	if got := FadeColor(nil, 1); got != (color.NRGBA{}) {
		t.Errorf("FadeColor(nil) = %+v, want zero", got)
	}
}

func TestShadeColor(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 0, A: 128}

	darker := ShadeColor(c, 0.5)
	if darker.R != 100 || darker.G != 50 || darker.B != 0 {
		t.Errorf("ShadeColor(0.5) = %+v", darker)
	}
	if darker.A != 128 {
		t.Errorf("alpha changed: %d", darker.A)
	}

	brighter := ShadeColor(c, 2)
	if brighter.R != 255 || brighter.G != 200 {
		t.Errorf("ShadeColor(2) = %+v, want clamped", brighter)
	}
}
