package scenes

import (
	"testing"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 面板入场结束后"打开"按钮的中心点（800x600 窗口）
const coverButtonCenterX, coverButtonCenterY = 400, 376

func TestCoverSceneOpenButtonAdvances(t *testing.T) {
	deps, input := newTestDeps(t, true)

	var requests []game.Step
	scene := NewCoverScene(deps, func(from game.Step) { requests = append(requests, from) })
	defer scene.Dispose()

	run(scene, 2)
	input.click(scene, coverButtonCenterX, coverButtonCenterY)

	if len(requests) != 1 {
		t.Fatalf("advance called %d times, want 1", len(requests))
	}
	if requests[0] != game.StepCover {
		t.Errorf("advance(%s), want advance(Cover)", requests[0])
	}
}

func TestCoverSceneButtonFollowsPanel(t *testing.T) {
	deps, _ := newTestDeps(t, true)
	scene := NewCoverScene(deps, nil)
	defer scene.Dispose()

	pos, ok := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.openButton)
	if !ok {
		t.Fatal("open button has no position")
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, scene.openButton)

	scene.Update(frameDT)
	startY := pos.Y
	if button.Alpha != 0 {
		t.Errorf("button alpha before panel delay = %v, want 0", button.Alpha)
	}

	run(scene, 2)
	if pos.Y >= startY {
		t.Errorf("button should rise with the panel: start %v, end %v", startY, pos.Y)
	}
	if button.Alpha != 1 {
		t.Errorf("button alpha after entrance = %v, want 1", button.Alpha)
	}
}

func TestCoverSceneNilAdvance(t *testing.T) {
	deps, input := newTestDeps(t, true)
	scene := NewCoverScene(deps, nil)
	defer scene.Dispose()

	run(scene, 2)
	input.click(scene, coverButtonCenterX, coverButtonCenterY)
}

func TestCoverSceneExit(t *testing.T) {
	deps, input := newTestDeps(t, true)

	calls := 0
	scene := NewCoverScene(deps, func(game.Step) { calls++ })
	defer scene.Dispose()

	run(scene, 2)
	scene.BeginExit()

	if !scene.Exiting() {
		t.Error("Exiting() = false after BeginExit")
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, scene.openButton)
	if button.Enabled {
		t.Error("buttons must be disabled while exiting")
	}

	input.click(scene, coverButtonCenterX, coverButtonCenterY)
	if calls != 0 {
		t.Errorf("advance called %d times during exit, want 0", calls)
	}

	if scene.ExitFinished() {
		t.Error("ExitFinished() = true right after BeginExit")
	}
	run(scene, 0.6)
	if !scene.ExitFinished() {
		t.Error("ExitFinished() = false after exit duration")
	}
}

func TestCoverSceneDispose(t *testing.T) {
	deps, _ := newTestDeps(t, true)
	scene := NewCoverScene(deps, nil)
	screen := ebiten.NewImage(800, 600)

	run(scene, 0.5)
	scene.Draw(screen)

	scene.Dispose()
	scene.Dispose()

	if !scene.Disposed() {
		t.Fatal("Disposed() = false")
	}
	if !scene.ExitFinished() {
		t.Error("a disposed scene counts as finished")
	}
	if got := scene.entityManager.EntityCount(); got != 0 {
		t.Errorf("entities after Dispose = %d, want 0", got)
	}

	// 释放后的调用都是空操作
	scene.Update(frameDT)
	scene.Draw(screen)
	scene.BeginExit()
	if scene.Exiting() {
		t.Error("BeginExit after Dispose should do nothing")
	}
}
