package systems

import (
	"image/color"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pillHoverShade 实心按钮悬停时底色变暗的比例
const pillHoverShade = 0.88

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（实心按钮、文字链接、图标）
//
// 职责：
//   - 渲染按钮背景（圆角底色 / 下划线 / 静音斜线）
//   - 渲染按钮文字（自动居中）
//   - 根据按钮状态切换颜色，并应用 ButtonSystem 计算的缩放
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// alpha 为所在场景的整体透明度，与按钮自身的 Alpha 相乘
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image, alpha float64) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID, alpha)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID, alpha float64) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	a := button.Alpha * alpha
	if a <= 0 {
		return
	}

	scale := button.Scale
	if scale == 0 {
		scale = 1
	}
	centerX := pos.X + button.Width/2
	centerY := pos.Y + button.Height/2

	switch button.Style {
	case components.ButtonStylePill:
		s.drawPill(screen, button, centerX, centerY, scale, a)
	case components.ButtonStyleLink:
		s.drawLink(screen, button, centerX, centerY, scale, a)
	case components.ButtonStyleIcon:
		s.drawIcon(screen, button, centerX, centerY, scale, a)
	}
}

// drawPill 渲染实心圆角按钮：中间矩形 + 两端半圆
func (s *ButtonRenderSystem) drawPill(screen *ebiten.Image, button *components.ButtonComponent, cx, cy, scale, alpha float64) {
	w := button.Width * scale
	h := button.Height * scale
	r := h / 2

	fill := button.FillColor
	if fill == nil {
		fill = color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xff}
	}
	if button.State == components.UIHovered || button.State == components.UIClicked {
		fill = utils.ShadeColor(fill, pillHoverShade)
	}
	clr := utils.FadeColor(fill, alpha)

	left := cx - w/2
	top := cy - h/2
	vector.DrawFilledRect(screen, float32(left+r), float32(top), float32(w-2*r), float32(h), clr, true)
	vector.DrawFilledCircle(screen, float32(left+r), float32(cy), float32(r), clr, true)
	vector.DrawFilledCircle(screen, float32(left+w-r), float32(cy), float32(r), clr, true)

	s.drawLabel(screen, button, button.TextColor, cx, cy, scale, alpha)
}

// drawLink 渲染带下划线的文字链接
func (s *ButtonRenderSystem) drawLink(screen *ebiten.Image, button *components.ButtonComponent, cx, cy, scale, alpha float64) {
	clr := button.TextColor
	if button.State == components.UIHovered && button.HoverTextColor != nil {
		clr = button.HoverTextColor
	}

	s.drawLabel(screen, button, clr, cx, cy, scale, alpha)

	if button.Font == nil {
		return
	}
	width, height := text.Measure(button.Text, button.Font, 0)
	width *= scale
	underlineY := cy + height*scale/2 + 3
	vector.StrokeLine(screen,
		float32(cx-width/2), float32(underlineY),
		float32(cx+width/2), float32(underlineY),
		2, utils.FadeColor(clr, alpha), true)
}

// drawIcon 渲染图标按钮；Crossed 时画一条斜线
func (s *ButtonRenderSystem) drawIcon(screen *ebiten.Image, button *components.ButtonComponent, cx, cy, scale, alpha float64) {
	// 图标平时半透明，悬停时不透明
	if button.State != components.UIHovered && button.State != components.UIClicked {
		alpha *= 0.5
	}

	s.drawLabel(screen, button, button.TextColor, cx, cy, scale, alpha)

	if button.Crossed {
		half := button.Height * scale * 0.35
		vector.StrokeLine(screen,
			float32(cx-half), float32(cy+half),
			float32(cx+half), float32(cy-half),
			2, utils.FadeColor(button.TextColor, alpha), true)
	}
}

// drawLabel 以 (cx, cy) 为中心绘制缩放后的按钮文字
func (s *ButtonRenderSystem) drawLabel(screen *ebiten.Image, button *components.ButtonComponent, clr color.Color, cx, cy, scale, alpha float64) {
	if button.Text == "" || button.Font == nil {
		return
	}
	if clr == nil {
		clr = color.White
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	text.Draw(screen, button.Text, button.Font, op)
}
