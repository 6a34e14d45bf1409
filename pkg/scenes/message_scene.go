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
)

// messageBlock 寄语页的一段文字
type messageBlock struct {
	lines      []string
	face       *text.GoTextFace
	color      color.Color
	lineHeight float64
	top        float64 // 入场完成后的顶部 Y
	reveal     *utils.Tween
}

func (b *messageBlock) height() float64 {
	return float64(len(b.lines)) * b.lineHeight
}

// MessageScene 寄语页
//
// 称呼、引文、附言、"继续"链接四段依次上移淡入（首段延迟 0.5 秒，
// 之后每段间隔 0.8 秒）。点击链接请求前进到揭晓页。
// 退场时整体上移 50 像素并淡出。
type MessageScene struct {
	cardScene

	advance game.AdvanceFunc

	blocks     []*messageBlock
	linkReveal *utils.Tween
	linkTop    float64
	linkButton ecs.EntityID
	linkWidth  float64
	linkHeight float64
}

// NewMessageScene 创建寄语页
// advance 为 nil 时链接点击无效果
func NewMessageScene(deps Deps, advance game.AdvanceFunc) *MessageScene {
	s := &MessageScene{
		cardScene: newCardScene("MessageScene", deps),
		advance:   advance,
	}

	card := deps.Card
	charcoal := config.MustColor(card.Theme.Charcoal)
	muted := config.MustColor(card.Theme.Muted)
	gold := config.MustColor(card.Theme.Gold)

	parts := []struct {
		text  string
		face  *text.GoTextFace
		color color.Color
	}{
		{card.Message.Greeting, deps.loadFace(game.FontBold, config.MessageGreetingSize), charcoal},
		{card.Message.Quote, deps.loadFace(game.FontRegular, config.MessageQuoteSize), charcoal},
		{card.Message.Note, deps.loadFace(game.FontItalic, config.MessageNoteSize), muted},
	}

	for i, part := range parts {
		s.blocks = append(s.blocks, &messageBlock{
			lines:      utils.WrapText(part.text, part.face, config.MessageMaxWidth),
			face:       part.face,
			color:      part.color,
			lineHeight: lineHeightOr(part.face, 24),
			reveal:     s.childTween(i),
		})
	}

	linkFace := deps.loadFace(game.FontRegular, config.MessageLinkSize)
	s.linkReveal = s.childTween(len(parts))
	s.linkWidth = measureWidth(card.Message.Link, linkFace) + 8
	s.linkHeight = lineHeightOr(linkFace, 24) + 8

	s.layout()

	s.linkButton = s.addButton(0, 0, &components.ButtonComponent{
		Style:          components.ButtonStyleLink,
		Text:           card.Message.Link,
		Font:           linkFace,
		TextColor:      gold,
		HoverTextColor: charcoal,
		Width:          s.linkWidth,
		Height:         s.linkHeight,
		Enabled:        true,
		Scale:          1,
		OnClick:        s.onContinue,
	})
	s.placeLink()

	return s
}

// childTween 第 i 段的入场补间
func (s *MessageScene) childTween(i int) *utils.Tween {
	delay := config.MessageChildrenDelay + float64(i)*config.MessageStagger
	return s.tween(0, 1, config.MessageChildDuration, delay, utils.EaseOutQuad)
}

// layout 计算各段落入场完成后的位置（整体垂直居中）
func (s *MessageScene) layout() {
	total := 0.0
	for _, b := range s.blocks {
		total += b.height() + config.MessageBlockGap
	}
	total += s.linkHeight

	y := (s.height - total) / 2
	for _, b := range s.blocks {
		b.top = y
		y += b.height() + config.MessageBlockGap
	}
	s.linkTop = y
}

// placeLink 让链接按钮跟随入场位移
func (s *MessageScene) placeLink() {
	rise := config.MessageChildRise * (1 - s.linkReveal.Value())
	s.moveButton(s.linkButton, (s.width-s.linkWidth)/2, s.linkTop+rise)
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.linkButton); ok {
		button.Alpha = s.linkReveal.Value()
	}
}

// onContinue 链接回调
func (s *MessageScene) onContinue() {
	if s.advance != nil {
		s.advance(game.StepMessage)
	}
}

// Update 推进入场/退场动画并处理链接
func (s *MessageScene) Update(deltaTime float64) {
	if !s.updateBase(deltaTime) {
		return
	}
	s.placeLink()
}

// Draw 绘制寄语
func (s *MessageScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}

	layer := s.beginLayer()
	cx := s.width / 2
	for _, b := range s.blocks {
		v := b.reveal.Value()
		if v <= 0 {
			continue
		}
		y := b.top + config.MessageChildRise*(1-v) + b.lineHeight/2
		for _, line := range b.lines {
			utils.DrawTextCentered(layer, line, b.face, cx, y, b.color, v)
			y += b.lineHeight
		}
	}
	s.buttonRender.Draw(layer, 1)

	exit := s.exitProgress()
	s.present(screen, 1-exit, 1, -config.MessageExitRise*exit)
}

// Dispose 释放寄语页
func (s *MessageScene) Dispose() {
	s.disposeBase()
}

func lineHeightOr(face *text.GoTextFace, fallback float64) float64 {
	if h := utils.LineHeight(face); h > 0 {
		return h
	}
	return fallback
}

func measureWidth(str string, face *text.GoTextFace) float64 {
	if face == nil {
		return float64(len(str)) * 10
	}
	w, _ := text.Measure(str, face, 0)
	return w
}
