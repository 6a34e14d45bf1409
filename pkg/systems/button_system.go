package systems

import (
	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/utils"
)

const (
	// ButtonHoverScale 悬停时的缩放
	ButtonHoverScale = 1.05
	// ButtonPressScale 按下时的缩放
	ButtonPressScale = 0.95
	// buttonScaleSpeed 缩放逼近速度（每秒）
	buttonScaleSpeed = 12.0
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下、释放等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（按下和释放都落在同一个按钮上时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//   - 平滑更新悬停/按下的缩放反馈
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
	pressed       ecs.EntityID // 接收本次按下的按钮，0 表示没有
}

// NewButtonSystem 创建按钮交互系统
// input 为 nil 时读取真实的鼠标/触摸输入
func NewButtonSystem(em *ecs.EntityManager, input utils.InputSource) *ButtonSystem {
	if input == nil {
		input = utils.GetInputState
	}
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
// 检测指针位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	state := s.input()
	pointerX, pointerY := float64(state.X), float64(state.Y)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	var clicked []func()
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			s.approachScale(button, 1, deltaTime)
			continue
		}

		isHovered := isPointInButton(pointerX, pointerY, pos.X, pos.Y, button.Width, button.Height)

		if isHovered && state.JustPressed {
			s.pressed = entityID
		}

		if isHovered {
			if state.Pressed {
				button.State = components.UIClicked
			} else if state.JustReleased {
				// 释放瞬间触发回调；从别处拖进来的释放不算点击
				if button.OnClick != nil && s.pressed == entityID {
					clicked = append(clicked, button.OnClick)
				}
				button.State = components.UIHovered
			} else {
				button.State = components.UIHovered
			}
		} else {
			button.State = components.UINormal
		}

		s.approachScale(button, targetScale(button.State), deltaTime)
	}

	if !state.Pressed {
		s.pressed = 0
	}

	// 回调可能禁用按钮或切换场景，放在遍历结束后执行
	for _, fn := range clicked {
		fn()
	}
}

// SetEnabled 启用或禁用全部按钮
func (s *ButtonSystem) SetEnabled(enabled bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		button.Enabled = enabled
		if !enabled {
			button.State = components.UIDisabled
		}
	}
}

// approachScale 让按钮缩放平滑逼近目标值
func (s *ButtonSystem) approachScale(button *components.ButtonComponent, target, deltaTime float64) {
	if button.Scale == 0 {
		button.Scale = 1
	}
	step := utils.Clamp01(buttonScaleSpeed * deltaTime)
	button.Scale = utils.Lerp(button.Scale, target, step)
}

func targetScale(state components.UIState) float64 {
	switch state {
	case components.UIHovered:
		return ButtonHoverScale
	case components.UIClicked:
		return ButtonPressScale
	default:
		return 1
	}
}

// isPointInButton 检测指针是否在按钮范围内
func isPointInButton(pointerX, pointerY, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return pointerX >= buttonX &&
		pointerX <= buttonX+buttonWidth &&
		pointerY >= buttonY &&
		pointerY <= buttonY+buttonHeight
}
