package components

import (
	"image/color"

	"github.com/decker502/anniversary/pkg/utils"
)

// SparkleComponent 背景闪光粒子
//
// 每个粒子在创建时随机生成全部参数，之后只由 Motion 补间驱动：
// Motion 从 0 到 1 往返（yoyo）无限循环，当前值 v 决定
//
//	上移 = Rise * v
//	缩放 = PeakScale * v
//	透明度 = PeakOpacity * v
//
// 基准位置由 PositionComponent 提供。
type SparkleComponent struct {
	Size        float64 // 直径（像素）
	Color       color.NRGBA
	Rise        float64 // 最大上移距离（像素）
	PeakScale   float64 // 最大缩放
	PeakOpacity float64 // 最大透明度

	Motion *utils.Tween

	// 当前帧的派生值
	OffsetY float64
	Scale   float64
	Opacity float64
}
