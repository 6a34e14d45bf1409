package scenes

import (
	"image/color"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 封面面板内部的纵向布局（相对面板顶部）
const (
	coverTitleY    = 90.0
	coverSubtitleY = 150.0
	coverButtonY   = 200.0
)

// CoverScene 封面
//
// 整体淡入，面板稍后上移淡入；点击"打开"按钮请求前进到寄语页。
// 退场时整体放大并淡出。
type CoverScene struct {
	cardScene

	card    *config.CardConfig
	advance game.AdvanceFunc

	fadeIn *utils.Tween
	panel  *utils.Tween

	titleFace    *text.GoTextFace
	subtitleFace *text.GoTextFace

	openButton ecs.EntityID

	gold     color.NRGBA
	muted    color.NRGBA
	panelClr color.NRGBA
}

// NewCoverScene 创建封面
// advance 为 nil 时按钮点击无效果
func NewCoverScene(deps Deps, advance game.AdvanceFunc) *CoverScene {
	s := &CoverScene{
		cardScene: newCardScene("CoverScene", deps),
		card:      deps.Card,
		advance:   advance,
		gold:      config.MustColor(deps.Card.Theme.Gold),
		muted:     config.MustColor(deps.Card.Theme.Muted),
		panelClr:  config.MustColor(deps.Card.Theme.Frame),
	}

	s.fadeIn = s.tween(0, 1, config.CoverFadeInDuration, 0, utils.EaseLinear)
	s.panel = s.tween(0, 1, config.CoverPanelDuration, config.CoverPanelDelay, utils.EaseOutCubic)

	s.titleFace = deps.loadFace(game.FontBold, config.CoverTitleSize)
	s.subtitleFace = deps.loadFace(game.FontRegular, config.CoverSubtitleSize)

	x, y := s.buttonOrigin()
	s.openButton = s.addButton(x, y, &components.ButtonComponent{
		Style:     components.ButtonStylePill,
		Text:      deps.Card.Cover.Button,
		Font:      deps.loadFace(game.FontBold, 22),
		TextColor: color.White,
		FillColor: s.gold,
		Width:     config.CoverButtonWidth,
		Height:    config.CoverButtonHeight,
		Enabled:   true,
		Scale:     1,
		OnClick:   s.onOpen,
	})

	return s
}

// onOpen "打开"按钮回调
func (s *CoverScene) onOpen() {
	if s.advance != nil {
		s.advance(game.StepCover)
	}
}

// panelOrigin 面板左上角（包含入场上移）
func (s *CoverScene) panelOrigin() (float64, float64) {
	x := (s.width - config.CoverPanelWidth) / 2
	y := (s.height-config.CoverPanelHeight)/2 + config.CoverPanelRise*(1-s.panel.Value())
	return x, y
}

func (s *CoverScene) buttonOrigin() (float64, float64) {
	px, py := s.panelOrigin()
	return px + (config.CoverPanelWidth-config.CoverButtonWidth)/2, py + coverButtonY
}

// Update 推进入场/退场动画并处理按钮
func (s *CoverScene) Update(deltaTime float64) {
	if !s.updateBase(deltaTime) {
		return
	}

	x, y := s.buttonOrigin()
	s.moveButton(s.openButton, x, y)
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.openButton); ok {
		button.Alpha = s.panel.Value()
	}
}

// Draw 绘制封面
func (s *CoverScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}

	layer := s.beginLayer()
	panelAlpha := s.panel.Value()
	if panelAlpha > 0 {
		s.drawPanel(layer, panelAlpha)
		s.buttonRender.Draw(layer, 1)
	}

	exit := s.exitProgress()
	alpha := s.fadeIn.Value() * (1 - exit)
	scale := 1 + (config.CoverExitScale-1)*exit
	s.present(screen, alpha, scale, 0)
}

// drawPanel 半透明面板、双线边框、标题和副标题
func (s *CoverScene) drawPanel(dst *ebiten.Image, alpha float64) {
	x, y := s.panelOrigin()
	w, h := config.CoverPanelWidth, config.CoverPanelHeight

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), utils.FadeColor(s.panelClr, 0.5*alpha), true)

	border := utils.FadeColor(s.gold, 0.3*alpha)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, border, true)
	vector.StrokeRect(dst, float32(x+6), float32(y+6), float32(w-12), float32(h-12), 2, border, true)

	cx := x + w/2
	utils.DrawTextCentered(dst, s.card.Cover.Title, s.titleFace, cx, y+coverTitleY, s.gold, alpha)
	utils.DrawTextCentered(dst, s.card.Cover.Subtitle, s.subtitleFace, cx, y+coverSubtitleY, s.muted, alpha)
}

// Dispose 释放封面
func (s *CoverScene) Dispose() {
	s.disposeBase()
}
