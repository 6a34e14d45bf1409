package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := loadTestFace(t, 20)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{"短文本不换行", "Happy Anniversary", 1000, 1},
		{"长句在空格处断行", "True love isn't about finding someone you can live with", 200, 2},
		{"显式换行符", "line one\nline two", 1000, 2},
		{"超长单词强制断行", strings.Repeat("m", 80), 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("WrapText() 返回 %d 行，期望至少 %d 行: %q", len(lines), tt.expectMin, lines)
			}
			for _, line := range lines {
				if strings.Contains(line, " ") && measureTextWidth(line, font) > tt.maxWidth {
					t.Errorf("行 %q 超过最大宽度 %.0f", line, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 在空格处断行时不拆开单词
func TestWrapTextKeepsWords(t *testing.T) {
	font := loadTestFace(t, 20)
	input := "watching you two has been the greatest lesson of our lives"

	lines := WrapText(input, font, 180)
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("rejoined lines = %q, want %q", got, input)
	}
}

// TestWrapTextDegenerateInput 空文本或无字体时原样返回
func TestWrapTextDegenerateInput(t *testing.T) {
	if lines := WrapText("", nil, 100); len(lines) != 1 || lines[0] != "" {
		t.Errorf("WrapText(\"\") = %q", lines)
	}
	if lines := WrapText("abc", nil, 100); len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("WrapText without font = %q", lines)
	}
}

func TestLineHeight(t *testing.T) {
	if LineHeight(nil) != 0 {
		t.Error("LineHeight(nil) should be 0")
	}
	if h := LineHeight(loadTestFace(t, 24)); h <= 0 {
		t.Errorf("LineHeight = %v, want > 0", h)
	}
}
