package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 定义按钮的渲染样式
type ButtonStyle int

const (
	// ButtonStylePill 实心圆角按钮（封面"打开"）
	ButtonStylePill ButtonStyle = iota
	// ButtonStyleLink 下划线文字链接（寄语页"继续"）
	ButtonStyleLink
	// ButtonStyleIcon 单个字形图标（揭晓页静音开关）
	ButtonStyleIcon
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 按钮没有贴图，由 ButtonRenderSystem 用矢量图形和文字绘制
//   - 位置由 PositionComponent 提供（左上角），按钮以自身中心缩放
type ButtonComponent struct {
	// Style 渲染样式
	Style ButtonStyle

	// ===== 按钮文字 =====
	// Text 按钮上显示的文字（图标按钮为字形）
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 正常状态的文字颜色
	TextColor color.Color
	// HoverTextColor 悬停状态的文字颜色（可选，nil 时使用 TextColor）
	HoverTextColor color.Color
	// FillColor 实心按钮的底色（仅 ButtonStylePill）
	FillColor color.Color
	// Crossed 图标上是否画一条斜线（静音状态）
	Crossed bool

	// ===== 按钮尺寸 =====
	Width  float64
	Height float64

	// ===== 透明度 =====
	// Alpha 按钮整体透明度（跟随所在段落的入场动画）
	Alpha float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Scale 当前反馈缩放（悬停 1.05，按下 0.95），由 ButtonSystem 平滑逼近
	Scale float64

	// ===== 点击回调 =====
	// OnClick 点击回调函数（在指针释放时触发）
	OnClick func()
}
