// Package utils 提供通用工具函数：缓动、补间、帧驱动调度器和指针输入
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 指针位置（逻辑像素）
	X, Y int
	// 指针是否处于按下状态
	Pressed bool
	// 本帧是否刚按下
	JustPressed bool
	// 本帧是否刚释放（按钮在释放瞬间触发）
	JustReleased bool
}

// InputSource 返回当前帧输入状态的函数
// 场景和系统通过它读取输入，测试中可以替换为固定序列
type InputSource func() InputState

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 刚释放的触摸：位置取上一帧
	released := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(released) > 0 {
		state.X, state.Y = inpututil.TouchPositionInPreviousTick(released[0])
		state.JustReleased = true
		return state
	}

	// 新的或持续的触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.Pressed = true
		state.JustPressed = inpututil.TouchPressDuration(touchIDs[0]) == 1
		return state
	}

	// 鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}
