package utils

import "image/color"

// FadeColor 返回透明度乘以 alpha 后的颜色
func FadeColor(c color.Color, alpha float64) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*Clamp01(alpha) + 0.5)
	return n
}

// ShadeColor 按 factor 调整 RGB 亮度（factor < 1 变暗），透明度不变
func ShadeColor(c color.Color, factor float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	shade := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f + 0.5)
	}
	n.R, n.G, n.B = shade(n.R), shade(n.G), shade(n.B)
	return n
}
