package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the card (cover, message, reveal).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，用于支持场景的退场动画
//
// SceneManager 切换场景时先调用 BeginExit()，之后只继续驱动旧场景的
// Update/Draw，直到 ExitFinished() 返回 true 才挂载新场景（先退后进）。
// 进入退场状态的场景必须停止响应输入。
type Exiter interface {
	BeginExit()
	ExitFinished() bool
}

// Disposer 是一个可选接口，用于在场景卸载时释放资源
//
// Dispose 必须同步取消场景持有的全部计时器和循环动画，
// 并释放音频播放器、离屏图片等资源。可能被调用多次。
type Disposer interface {
	Dispose()
}

// disposeScene 释放实现了 Disposer 的场景
func disposeScene(scene Scene) {
	if d, ok := scene.(Disposer); ok {
		d.Dispose()
	}
}
