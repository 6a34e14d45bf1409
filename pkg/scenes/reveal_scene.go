package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/anniversary/pkg/components"
	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/ecs"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/decker502/anniversary/pkg/systems"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MusicNoteGlyph 音符字形（静音按钮和全局音乐提示）
const MusicNoteGlyph = "♪"

// 相框底部留白中的文字位置（相对相框顶部）
const (
	polaroidHeadingY    = config.PolaroidPadding + config.PolaroidPhotoHeight + 40
	polaroidSignatureY  = polaroidHeadingY + 34
	polaroidHeadingRise = 10.0
)

// RevealScene 揭晓页（终点）
//
// 2 秒整体淡入；相框弹入（缩放 0.8 -> 1，旋转 -2° -> 0°）；
// 照片 15 秒缓慢缩小（Ken Burns）；标题和署名延迟淡入；五颗爱心循环上浮；
// 右上角静音开关。
//
// 独占持有背景音乐淡入控制器：第一次 Update（真正挂载）时开始播放，
// Dispose 时停止并释放播放器。照片缺失时显示占位底色。
type RevealScene struct {
	cardScene

	card  *config.CardConfig
	fader *game.MusicFader

	fadeIn    *utils.Tween
	polaroid  *utils.Tween
	kenBurns  *utils.Tween
	heading   *utils.Tween
	signature *utils.Tween

	photo         *ebiten.Image // 由 ResourceManager 缓存，不在此释放
	polaroidImage *ebiten.Image
	photoLayer    *ebiten.Image

	headingFace   *text.GoTextFace
	signatureFace *text.GoTextFace

	hearts     *systems.HeartSystem
	muteButton ecs.EntityID

	frameClr       color.NRGBA
	placeholderClr color.NRGBA
	charcoal       color.NRGBA
	muted          color.NRGBA

	mounted bool
}

// NewRevealScene 创建揭晓页
func NewRevealScene(deps Deps) *RevealScene {
	card := deps.Card
	s := &RevealScene{
		cardScene:      newCardScene("RevealScene", deps),
		card:           card,
		frameClr:       config.MustColor(card.Theme.Frame),
		placeholderClr: config.MustColor(card.Theme.Placeholder),
		charcoal:       config.MustColor(card.Theme.Charcoal),
		muted:          config.MustColor(card.Theme.Muted),
	}

	s.fadeIn = s.tween(0, 1, config.RevealFadeInDuration, 0, utils.EaseLinear)
	s.polaroid = s.tween(0, 1, config.PolaroidDuration, config.PolaroidDelay, utils.EaseOutCubic)
	s.kenBurns = s.tween(config.KenBurnsStartScale, 1, config.KenBurnsDuration, 0, utils.EaseLinear)
	s.heading = s.tween(0, 1, config.RevealTextDuration, config.RevealHeadingDelay, utils.EaseOutQuad)
	s.signature = s.tween(0, 1, config.RevealTextDuration, config.RevealSignatureDelay, utils.EaseLinear)

	s.headingFace = deps.loadFace(game.FontBold, config.RevealHeadingSize)
	s.signatureFace = deps.loadFace(game.FontRegular, config.RevealSignatureSize)

	s.loadPhoto(deps)
	s.polaroidImage = ebiten.NewImage(int(config.PolaroidWidth), int(config.PolaroidHeight))
	s.photoLayer = ebiten.NewImage(int(config.PolaroidWidth-2*config.PolaroidPadding), int(config.PolaroidPhotoHeight))

	s.fader = newRevealFader(deps)

	s.hearts = systems.NewHeartSystem(s.entityManager, card.Hearts,
		deps.loadFace(game.FontRegular, card.Hearts.Size), config.MustColor(card.Theme.Heart))
	s.hearts.Spawn(s.width, s.height)

	s.muteButton = s.addButton(
		s.width-config.MuteButtonMargin-config.MuteButtonSize, config.MuteButtonMargin,
		&components.ButtonComponent{
			Style:     components.ButtonStyleIcon,
			Text:      MusicNoteGlyph,
			Font:      deps.loadFace(game.FontRegular, 26),
			TextColor: config.MustColor(card.Theme.Gold),
			Width:     config.MuteButtonSize,
			Height:    config.MuteButtonSize,
			Alpha:     1,
			Enabled:   true,
			Scale:     1,
			OnClick:   s.onToggleMute,
		})

	return s
}

// newRevealFader 打开背景音乐；失败时淡入控制器以无播放器状态运行
func newRevealFader(deps Deps) *game.MusicFader {
	var player game.MusicPlayer
	var gate game.PlaybackGate
	if deps.Audio != nil {
		gate = deps.Audio.Gate()
		p, err := deps.Audio.OpenMusic(deps.Card.Reveal.SongID)
		if err != nil {
			log.Printf("[RevealScene] Warning: %v", err)
		} else {
			player = p
		}
	}
	return game.NewMusicFader(player, gate, deps.Card.Fade)
}

// loadPhoto 加载照片，缺失时保持 nil（绘制占位底色）
func (s *RevealScene) loadPhoto(deps Deps) {
	if deps.Resources == nil {
		return
	}
	photo, err := deps.Resources.LoadImageByID(s.card.Reveal.PhotoID)
	if err != nil {
		log.Printf("[RevealScene] Warning: photo unavailable: %v", err)
		return
	}
	s.photo = photo
}

// onToggleMute 静音按钮回调
func (s *RevealScene) onToggleMute() {
	muted := s.fader.ToggleMute()
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.muteButton); ok {
		button.Crossed = muted
	}
}

// Update 推进动画、音乐淡入和静音按钮
func (s *RevealScene) Update(deltaTime float64) {
	if !s.updateBase(deltaTime) {
		return
	}

	if !s.mounted {
		s.mounted = true
		s.fader.Start()
	}
	s.fader.Update(deltaTime)
	s.hearts.Update(deltaTime)
}

// Draw 绘制揭晓页
func (s *RevealScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}

	layer := s.beginLayer()
	s.drawPolaroid(layer)
	s.hearts.Draw(layer, 1)
	s.buttonRender.Draw(layer, 1)

	alpha := s.fadeIn.Value() * (1 - s.exitProgress())
	s.present(screen, alpha, 1, 0)
}

// drawPolaroid 在离屏图片上绘制相框，再以弹入动画的缩放/旋转贴到图层中央
func (s *RevealScene) drawPolaroid(dst *ebiten.Image) {
	v := s.polaroid.Value()
	if v <= 0 {
		return
	}

	w, h := config.PolaroidWidth, config.PolaroidHeight
	s.polaroidImage.Clear()
	vector.DrawFilledRect(s.polaroidImage, 0, 0, float32(w), float32(h), s.frameClr, true)

	s.drawPhoto()
	photoOp := &ebiten.DrawImageOptions{}
	photoOp.GeoM.Translate(config.PolaroidPadding, config.PolaroidPadding)
	s.polaroidImage.DrawImage(s.photoLayer, photoOp)

	hv := s.heading.Value()
	utils.DrawTextCentered(s.polaroidImage, s.card.Reveal.Heading, s.headingFace,
		w/2, polaroidHeadingY+polaroidHeadingRise*(1-hv), s.charcoal, hv)
	utils.DrawTextCentered(s.polaroidImage, s.card.Reveal.Signature, s.signatureFace,
		w/2, polaroidSignatureY, s.muted, s.signature.Value())

	scale := utils.Lerp(config.PolaroidStartScale, 1, v)
	rotation := utils.Lerp(config.PolaroidStartRotation, 0, v) * math.Pi / 180

	// 阴影
	shadow := &ebiten.DrawImageOptions{}
	shadow.GeoM.Translate(-w/2, -h/2)
	shadow.GeoM.Scale(scale, scale)
	shadow.GeoM.Rotate(rotation)
	shadow.GeoM.Translate(s.width/2, s.height/2+12)
	shadow.ColorScale.Scale(0, 0, 0, float32(0.18*v))
	dst.DrawImage(s.polaroidImage, shadow)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(s.width/2, s.height/2)
	op.ColorScale.ScaleAlpha(float32(v))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.polaroidImage, op)
}

// drawPhoto 照片按"铺满"方式缩放，叠加 Ken Burns 缩放后居中裁切
func (s *RevealScene) drawPhoto() {
	s.photoLayer.Fill(s.placeholderClr)
	if s.photo == nil {
		return
	}

	bounds := s.photo.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}
	pw := float64(s.photoLayer.Bounds().Dx())
	ph := float64(s.photoLayer.Bounds().Dy())

	scale := math.Max(pw/iw, ph/ih) * s.kenBurns.Value()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pw/2, ph/2)
	op.Filter = ebiten.FilterLinear
	s.photoLayer.DrawImage(s.photo, op)
}

// Fader 返回背景音乐淡入控制器
func (s *RevealScene) Fader() *game.MusicFader {
	return s.fader
}

// Dispose 停止音乐并释放离屏图片，可重复调用
func (s *RevealScene) Dispose() {
	if !s.disposeBase() {
		return
	}
	s.fader.Dispose()
	s.polaroidImage.Deallocate()
	s.photoLayer.Deallocate()
}
