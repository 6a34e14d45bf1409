package config

import "testing"

// TestPolaroidLayout 验证相框内部布局
func TestPolaroidLayout(t *testing.T) {
	photoWidth := PolaroidWidth - 2*PolaroidPadding
	if PolaroidPhotoHeight != photoWidth*4/3 {
		t.Errorf("PolaroidPhotoHeight = %v, want 3:4 of %v", PolaroidPhotoHeight, photoWidth)
	}
	if PolaroidPhotoHeight != 384 {
		t.Errorf("PolaroidPhotoHeight = %v, want 384", PolaroidPhotoHeight)
	}

	// 照片下方要留出标题和署名的空间
	caption := PolaroidHeight - PolaroidPadding - PolaroidPhotoHeight
	if caption < RevealHeadingSize+RevealSignatureSize {
		t.Errorf("caption area %v too small for heading and signature", caption)
	}
}

// TestLayoutFitsWindow 验证各屏幕元素放得进默认窗口
func TestLayoutFitsWindow(t *testing.T) {
	window := DefaultCardConfig().Window
	w, h := float64(window.Width), float64(window.Height)

	tests := []struct {
		name          string
		width, height float64
	}{
		{"cover panel", CoverPanelWidth, CoverPanelHeight + CoverPanelRise},
		{"cover button", CoverButtonWidth, CoverButtonHeight},
		{"message column", MessageMaxWidth, MessageChildRise},
		{"polaroid", PolaroidWidth, PolaroidHeight},
		{"mute button", MuteButtonSize + MuteButtonMargin, MuteButtonSize + MuteButtonMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.width > w || tt.height > h {
				t.Errorf("%s %vx%v exceeds window %vx%v", tt.name, tt.width, tt.height, w, h)
			}
		})
	}

	if CoverButtonWidth > CoverPanelWidth {
		t.Error("cover button wider than its panel")
	}
}

// TestAnimationTimeline 验证入场时间线的先后顺序
func TestAnimationTimeline(t *testing.T) {
	tests := []struct {
		name        string
		first, then float64
	}{
		{"cover panel after fade starts", 0, CoverPanelDelay},
		{"message stagger leaves no gap", MessageStagger, MessageChildDuration},
		{"polaroid before heading", PolaroidDelay, RevealHeadingDelay},
		{"heading before signature", RevealHeadingDelay, RevealSignatureDelay},
		{"photo settles after the fade in", RevealFadeInDuration, KenBurnsDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.first > tt.then {
				t.Errorf("%v should not exceed %v", tt.first, tt.then)
			}
		})
	}

	if SceneExitDuration <= 0 || MusicHintPeriod <= 0 {
		t.Error("exit duration and hint period must be positive")
	}
	if PolaroidStartScale >= 1 || KenBurnsStartScale <= 1 || CoverExitScale <= 1 {
		t.Error("entrance/exit scales point the wrong way")
	}
}
