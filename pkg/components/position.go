package components

// PositionComponent 实体在窗口中的位置（逻辑像素）
// 按钮为左上角；闪光和爱心为中心点
type PositionComponent struct {
	X float64
	Y float64
}
