package systems

import (
	"image/color"
	"math"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HeartGlyph 爱心字形
const HeartGlyph = "♥"

// HeartSystem 揭晓页漂浮爱心系统
//
// 爱心从窗口 OriginY 高度处交错排开（中间、左、右、左、右……），
// 依次错开 Stagger 秒启动，每轮上升 Rise 像素并淡入淡出，无限循环。
// 实体放在所属场景的 EntityManager 中，随场景一起释放。
type HeartSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.HeartConfig
	face          *text.GoTextFace
	color         color.Color
}

// NewHeartSystem 创建爱心系统
func NewHeartSystem(em *ecs.EntityManager, cfg config.HeartConfig, face *text.GoTextFace, clr color.Color) *HeartSystem {
	return &HeartSystem{
		entityManager: em,
		cfg:           cfg,
		face:          face,
		color:         clr,
	}
}

// Spawn 创建全部爱心
func (s *HeartSystem) Spawn(width, height float64) {
	for i := 0; i < s.cfg.Count; i++ {
		offset := s.cfg.Spread * float64(i)
		if i%2 == 0 {
			offset = -offset
		}

		rise := utils.NewTween(0, 1, s.cfg.Duration, float64(i)*s.cfg.Stagger, utils.EaseOutQuad)
		rise.Repeat = utils.RepeatForever

		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, &components.PositionComponent{
			X: width * (50 + offset) / 100,
			Y: height * s.cfg.OriginY,
		})
		s.entityManager.AddComponent(id, &components.HeartComponent{
			Distance: s.cfg.Rise,
			Rise:     rise,
		})
	}
}

// Update 推进爱心动画
func (s *HeartSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.HeartComponent](s.entityManager) {
		heart, _ := ecs.GetComponent[*components.HeartComponent](s.entityManager, id)
		heart.Rise.Update(deltaTime)

		if !heart.Rise.Started() {
			heart.OffsetY, heart.Scale, heart.Opacity = 0, 0, 0
			continue
		}

		p := heart.Rise.Value()
		heart.OffsetY = -heart.Distance * p
		heart.Scale = p
		// 0 -> 1 -> 0
		heart.Opacity = 1 - math.Abs(2*p-1)
	}
}

// Draw 绘制爱心
func (s *HeartSystem) Draw(screen *ebiten.Image, alpha float64) {
	if s.face == nil {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.HeartComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		heart, _ := ecs.GetComponent[*components.HeartComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		a := heart.Opacity * alpha
		if heart.Scale <= 0 || a <= 0 {
			continue
		}

		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(heart.Scale, heart.Scale)
		op.GeoM.Translate(pos.X, pos.Y+heart.OffsetY)
		op.ColorScale.ScaleWithColor(s.color)
		op.ColorScale.ScaleAlpha(float32(utils.Clamp01(a)))
		text.Draw(screen, HeartGlyph, s.face, op)
	}
}

// Count 返回爱心数量
func (s *HeartSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.HeartComponent](s.entityManager))
}
