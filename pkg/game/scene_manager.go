package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time:
// while the outgoing scene plays its exit animation the incoming scene is not mounted yet.
type SceneManager struct {
	currentScene Scene
	leavingScene Scene // 正在播放退场动画的场景
	pendingScene Scene // 等待旧场景退场后挂载的场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
//
// 如果当前场景实现了 Exiter，先播放其退场动画，结束后再释放并挂载新场景；
// 否则立即释放当前场景并挂载新场景。
// 退场过程中再次调用 SwitchTo 会替换待挂载的场景（被替换者直接释放）。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.leavingScene != nil {
		if sm.pendingScene != nil && sm.pendingScene != scene {
			disposeScene(sm.pendingScene)
		}
		sm.pendingScene = scene
		return
	}

	old := sm.currentScene
	if old == nil {
		sm.currentScene = scene
		return
	}

	if exiter, ok := old.(Exiter); ok {
		exiter.BeginExit()
		sm.leavingScene = old
		sm.pendingScene = scene
		sm.currentScene = nil
		log.Printf("[SceneManager] 开始退场: %T -> %T", old, scene)
		return
	}

	disposeScene(old)
	sm.currentScene = scene
	log.Printf("[SceneManager] 切换场景: %T -> %T", old, scene)
}

// GetCurrentScene 返回当前挂载的场景
// 退场动画进行期间返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// IsTransitioning 是否正在播放退场动画
func (sm *SceneManager) IsTransitioning() bool {
	return sm.leavingScene != nil
}

// Update updates the visible scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.leavingScene != nil {
		sm.leavingScene.Update(deltaTime)
		if exiter, ok := sm.leavingScene.(Exiter); !ok || exiter.ExitFinished() {
			sm.finishTransition()
		}
		return
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// finishTransition 释放旧场景并挂载新场景
func (sm *SceneManager) finishTransition() {
	old := sm.leavingScene
	disposeScene(old)
	sm.leavingScene = nil
	sm.currentScene = sm.pendingScene
	sm.pendingScene = nil
	log.Printf("[SceneManager] 退场完成: %T -> %T", old, sm.currentScene)
}

// Draw renders the visible scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.leavingScene != nil {
		sm.leavingScene.Draw(screen)
		return
	}
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Dispose 释放所有场景（程序退出时调用）
func (sm *SceneManager) Dispose() {
	for _, scene := range []Scene{sm.leavingScene, sm.pendingScene, sm.currentScene} {
		if scene != nil {
			disposeScene(scene)
		}
	}
	sm.leavingScene = nil
	sm.pendingScene = nil
	sm.currentScene = nil
}
