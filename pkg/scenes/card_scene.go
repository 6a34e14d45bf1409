package scenes

import (
	"log"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/systems"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// cardScene 三个屏幕共用的部分
//
//   - 私有的 EntityManager（按钮、爱心）和按钮系统
//   - 入场补间组：每帧统一推进
//   - 退场动画：BeginExit 禁用全部按钮并开始 0.5 秒退场补间
//   - 离屏图层：场景先画到图层，再整体缩放/平移/淡出到屏幕
//
// Dispose 之后 Update/Draw 都是空操作。
type cardScene struct {
	name   string
	width  float64
	height float64

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem

	tweens    []*utils.Tween
	exitTween *utils.Tween
	layer     *ebiten.Image
	disposed  bool
}

func newCardScene(name string, deps Deps) cardScene {
	em := ecs.NewEntityManager()
	width, height := deps.Width, deps.Height
	if width <= 0 || height <= 0 {
		width, height = float64(deps.Card.Window.Width), float64(deps.Card.Window.Height)
	}

	return cardScene{
		name:          name,
		width:         width,
		height:        height,
		entityManager: em,
		buttonSystem:  systems.NewButtonSystem(em, deps.Input),
		buttonRender:  systems.NewButtonRenderSystem(em),
		layer:         ebiten.NewImage(int(width), int(height)),
	}
}

// tween 创建并登记一个入场补间
func (s *cardScene) tween(from, to, duration, delay float64, ease utils.EasingFunc) *utils.Tween {
	tw := utils.NewTween(from, to, duration, delay, ease)
	s.tweens = append(s.tweens, tw)
	return tw
}

// addButton 创建按钮实体
func (s *cardScene) addButton(x, y float64, button *components.ButtonComponent) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	s.entityManager.AddComponent(id, button)
	return id
}

// moveButton 更新按钮位置
func (s *cardScene) moveButton(id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X, pos.Y = x, y
	}
}

// updateBase 推进补间；退场期间不处理输入
// 返回 false 表示场景已释放
func (s *cardScene) updateBase(deltaTime float64) bool {
	if s.disposed {
		return false
	}

	for _, tw := range s.tweens {
		tw.Update(deltaTime)
	}

	if s.exitTween != nil {
		s.exitTween.Update(deltaTime)
	}
	s.buttonSystem.Update(deltaTime)
	return true
}

// BeginExit 开始退场动画并禁用全部按钮
func (s *cardScene) BeginExit() {
	if s.exitTween != nil || s.disposed {
		return
	}
	s.buttonSystem.SetEnabled(false)
	s.exitTween = utils.NewTween(0, 1, config.SceneExitDuration, 0, utils.EaseInOutQuad)
	log.Printf("[%s] 开始退场", s.name)
}

// ExitFinished 退场动画是否结束
func (s *cardScene) ExitFinished() bool {
	return s.disposed || (s.exitTween != nil && s.exitTween.Done())
}

// Exiting 是否处于退场中
func (s *cardScene) Exiting() bool {
	return s.exitTween != nil
}

// exitProgress 退场进度 [0, 1]
func (s *cardScene) exitProgress() float64 {
	if s.exitTween == nil {
		return 0
	}
	return s.exitTween.Value()
}

// beginLayer 清空图层并返回，场景在其上绘制
func (s *cardScene) beginLayer() *ebiten.Image {
	s.layer.Clear()
	return s.layer
}

// present 把图层绘制到屏幕：以中心缩放，垂直平移，整体透明度 alpha
func (s *cardScene) present(screen *ebiten.Image, alpha, scale, offsetY float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.width/2, -s.height/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.width/2, s.height/2+offsetY)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.layer, op)
}

// disposeBase 释放实体和图层，可重复调用
func (s *cardScene) disposeBase() bool {
	if s.disposed {
		return false
	}
	s.disposed = true
	s.tweens = nil
	s.exitTween = nil
	s.entityManager.DestroyAll()
	s.layer.Deallocate()
	log.Printf("[%s] 已释放", s.name)
	return true
}

// Disposed 是否已释放
func (s *cardScene) Disposed() bool {
	return s.disposed
}
