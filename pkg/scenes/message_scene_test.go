package scenes

import (
	"testing"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestMessageSceneStaggeredEntrance(t *testing.T) {
	deps, _ := newTestDeps(t, true)
	scene := NewMessageScene(deps, nil)
	defer scene.Dispose()

	if len(scene.blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(scene.blocks))
	}

	tests := []struct {
		at      float64
		started []bool // 称呼、引文、附言、链接
	}{
		{0.4, []bool{false, false, false, false}},
		{0.6, []bool{true, false, false, false}},
		{1.4, []bool{true, true, false, false}},
		{2.2, []bool{true, true, true, false}},
		{3.0, []bool{true, true, true, true}},
	}

	elapsed := 0.0
	for _, tt := range tests {
		run(scene, tt.at-elapsed)
		elapsed = tt.at

		got := []bool{
			scene.blocks[0].reveal.Started(),
			scene.blocks[1].reveal.Started(),
			scene.blocks[2].reveal.Started(),
			scene.linkReveal.Started(),
		}
		for i := range got {
			if got[i] != tt.started[i] {
				t.Errorf("t=%.1f: child %d started = %v, want %v", tt.at, i, got[i], tt.started[i])
			}
		}
	}
}

func TestMessageSceneLayout(t *testing.T) {
	deps, _ := newTestDeps(t, true)
	scene := NewMessageScene(deps, nil)
	defer scene.Dispose()

	prev := -1.0
	for i, b := range scene.blocks {
		if len(b.lines) == 0 {
			t.Errorf("block %d has no lines", i)
		}
		if b.top <= prev {
			t.Errorf("block %d top %v not below previous %v", i, b.top, prev)
		}
		prev = b.top
	}
	if scene.linkTop <= prev {
		t.Errorf("link top %v not below last block %v", scene.linkTop, prev)
	}

	// 引文含换行，至少两行
	if n := len(scene.blocks[1].lines); n < 2 {
		t.Errorf("quote lines = %d, want >= 2", n)
	}
}

func TestMessageSceneLinkAdvances(t *testing.T) {
	deps, input := newTestDeps(t, true)

	var requests []game.Step
	scene := NewMessageScene(deps, func(from game.Step) { requests = append(requests, from) })
	defer scene.Dispose()

	run(scene, 4)

	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.linkButton)
	button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, scene.linkButton)
	if button.Alpha != 1 {
		t.Errorf("link alpha after entrance = %v, want 1", button.Alpha)
	}
	if pos.Y != scene.linkTop {
		t.Errorf("link y = %v, want %v", pos.Y, scene.linkTop)
	}

	input.click(scene, int(pos.X+button.Width/2), int(pos.Y+button.Height/2))

	if len(requests) != 1 || requests[0] != game.StepMessage {
		t.Fatalf("advance requests = %v, want [Message]", requests)
	}
}

func TestMessageSceneExitAndDispose(t *testing.T) {
	deps, _ := newTestDeps(t, true)
	scene := NewMessageScene(deps, nil)
	screen := ebiten.NewImage(800, 600)

	run(scene, 1)
	scene.BeginExit()
	run(scene, 0.25)
	scene.Draw(screen)
	if scene.ExitFinished() {
		t.Error("exit finished too early")
	}
	run(scene, 0.35)
	if !scene.ExitFinished() {
		t.Error("exit not finished after exit duration")
	}

	scene.Dispose()
	scene.Dispose()
	scene.Update(frameDT)
	scene.Draw(screen)
	if scene.entityManager.EntityCount() != 0 {
		t.Error("entities remain after Dispose")
	}
}
