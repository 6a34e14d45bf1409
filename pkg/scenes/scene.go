package scenes

import (
	"log"

	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 场景共享的依赖
type Deps struct {
	Resources *game.ResourceManager
	Audio     *game.AudioManager
	Card      *config.CardConfig
	// Input 指针输入源，nil 时读取真实输入
	Input utils.InputSource
	// Width/Height 逻辑窗口尺寸
	Width  float64
	Height float64
}

// NewSceneFactory 返回按屏幕序号创建场景的工厂
func NewSceneFactory(deps Deps) game.SceneFactory {
	return func(step game.Step, advance game.AdvanceFunc) game.Scene {
		switch step {
		case game.StepCover:
			return NewCoverScene(deps, advance)
		case game.StepMessage:
			return NewMessageScene(deps, advance)
		case game.StepReveal:
			return NewRevealScene(deps)
		default:
			log.Printf("[SceneFactory] 未知的屏幕: %s", step)
			return nil
		}
	}
}

// loadFace 加载内置字体，失败时返回 nil（文字不绘制，场景继续）
func (d Deps) loadFace(family game.FontFamily, size float64) *text.GoTextFace {
	if d.Resources == nil {
		return nil
	}
	face, err := d.Resources.LoadFace(family, size)
	if err != nil {
		log.Printf("[Scenes] Failed to load font %s@%.0f: %v", family, size, err)
		return nil
	}
	return face
}
