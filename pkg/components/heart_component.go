package components

import "github.com/decker502/anniversary/pkg/utils"

// HeartComponent 揭晓页漂浮的爱心
//
// Rise 从 0 到 1 无限循环（不往返），每一轮爱心从起点上升、
// 放大，透明度按 0 -> 1 -> 0 变化。起点由 PositionComponent 提供。
type HeartComponent struct {
	Distance float64 // 上升高度（像素）
	Rise     *utils.Tween

	OffsetY float64
	Scale   float64
	Opacity float64
}
