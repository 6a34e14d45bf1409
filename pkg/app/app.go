// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：资源、设置、音频、场景顺序和
// 背景闪光都在这里组装，main.go 只负责解析命令行和窗口参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"

	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/embedded"
	"github.com/decker502/anniversary/pkg/game"
	"github.com/decker502/anniversary/pkg/scenes"
	"github.com/decker502/anniversary/pkg/systems"
	"github.com/decker502/anniversary/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
)

const (
	// sampleRate 音频采样率
	sampleRate = 48000
	// fixedDeltaTime 固定帧间隔（60 TPS）
	fixedDeltaTime = 1.0 / 60.0
	// settingsAppName gdata 存储目录名
	settingsAppName = "anniversary_card"
	// resourceConfigPath 资源映射文件
	resourceConfigPath = "assets/config/resources.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
	// Music 背景音乐开关："on"/"off" 写入设置，为空时沿用已保存的设置
	Music string
	// CardPath 贺卡配置文件，为空时使用 data/card.yaml
	CardPath string
	// Seed 闪光粒子随机种子，0 表示每次启动随机
	Seed uint64
	// FS 资源文件系统，为 nil 时使用嵌入资源（含工作目录覆盖层）
	FS fs.FS
	// Input 指针输入源，为 nil 时读取真实输入
	Input utils.InputSource
	// Settings 设置存储，为 nil 时打开 gdata
	Settings *gdata.Manager
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	card            *config.CardConfig
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	sceneManager    *game.SceneManager
	sequence        *game.Sequence
	sparkles        *systems.SparkleSystem

	hint     *utils.Tween
	hintFace *text.GoTextFace
	paper    color.NRGBA
	gold     color.NRGBA

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	closed                   bool
}

// NewApp 创建并初始化贺卡应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init() 初始化。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	music, setMusic, err := parseMusicOption(cfg.Music)
	if err != nil {
		return nil, err
	}

	cardPath := cfg.CardPath
	if cardPath == "" {
		cardPath = config.DefaultCardConfigPath
	}
	card, err := config.LoadCardConfig(cardPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Card config loaded: %s", cardPath)

	// 初始化音频上下文（每个进程只能有一个）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = embedded.FS()
	}

	// 创建资源管理器并加载资源映射
	resourceManager := game.NewResourceManager(audioContext, fsys)
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(openSettingsStore(cfg.Settings))
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	if setMusic {
		settingsManager.SetMusicEnabled(music)
		if err := settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized (music enabled: %v)", audioManager.MusicEnabled())

	width, height := float64(card.Window.Width), float64(card.Window.Height)

	sceneManager := game.NewSceneManager()
	sequence := game.NewSequence(sceneManager, scenes.NewSceneFactory(scenes.Deps{
		Resources: resourceManager,
		Audio:     audioManager,
		Card:      card,
		Input:     cfg.Input,
		Width:     width,
		Height:    height,
	}))
	sequence.OnChange(func(step game.Step) {
		log.Printf("[App] Now showing: %s", step)
	})

	sparkles := systems.NewSparkleSystem(card.Sparkles, newRand(cfg.Seed))
	sparkles.Spawn(width, height)

	hint := utils.NewTween(0.4, 1, config.MusicHintPeriod/2, 0, utils.EaseInOutSine)
	hint.Repeat = utils.RepeatForever
	hint.Yoyo = true

	hintFace, err := resourceManager.LoadFace(game.FontRegular, 26)
	if err != nil {
		log.Printf("[App] Warning: music hint font unavailable: %v", err)
	}

	a := &App{
		card:            card,
		resourceManager: resourceManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		sceneManager:    sceneManager,
		sequence:        sequence,
		sparkles:        sparkles,
		hint:            hint,
		hintFace:        hintFace,
		paper:           config.MustColor(card.Theme.Paper),
		gold:            config.MustColor(card.Theme.Gold),
		verbose:         cfg.Verbose,
	}

	sequence.Start()
	return a, nil
}

// parseMusicOption 解析 --music 参数
//
// 返回：
//   - enabled: 音乐是否打开
//   - set: 是否需要写入设置（空字符串表示沿用已保存的设置）
func parseMusicOption(option string) (enabled, set bool, err error) {
	switch option {
	case "":
		return false, false, nil
	case "on":
		return true, true, nil
	case "off":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("invalid music option %q (want on or off)", option)
	}
}

// openSettingsStore 打开设置存储，失败时降级为内存设置
func openSettingsStore(store *gdata.Manager) *gdata.Manager {
	if store != nil {
		return store
	}
	manager, err := gdata.Open(gdata.Config{AppName: settingsAppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v (in-memory only)", err)
		return nil
	}
	return manager
}

// newRand 按种子创建随机数源，seed 为 0 时返回 nil（由系统随机播种）
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.card.Window.Width, a.card.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.card.Window.Width, a.card.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.step(fixedDeltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// step 推进一帧：背景闪光、当前场景、音符提示
func (a *App) step(deltaTime float64) {
	if a.closed {
		return
	}
	a.sparkles.Update(deltaTime)
	a.sceneManager.Update(deltaTime)
	a.hint.Update(deltaTime)
}

// Draw 绘制贺卡画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.paper)
	a.sparkles.Draw(screen)
	a.sceneManager.Draw(screen)
	a.drawMusicHint(screen)
}

// showMusicHint 揭晓页之前在右上角提示"有音乐"；揭晓页由静音按钮接替
func (a *App) showMusicHint() bool {
	return !a.closed && a.sequence.Position() != game.StepReveal && a.audioManager.MusicEnabled()
}

// drawMusicHint 脉动的音符
func (a *App) drawMusicHint(screen *ebiten.Image) {
	if !a.showMusicHint() {
		return
	}
	size := config.MuteButtonSize
	x := float64(a.card.Window.Width) - config.MuteButtonMargin - size/2
	y := config.MuteButtonMargin + size/2
	utils.DrawTextCentered(screen, scenes.MusicNoteGlyph, a.hintFace, x, y, a.gold, a.hint.Value())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// letterbox 使用纸张底色
	screen.Fill(a.paper)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回贺卡的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.card.Window.Width, a.card.Window.Height
}

// Card 返回贺卡配置（窗口标题和尺寸）
func (a *App) Card() *config.CardConfig {
	return a.card
}

// Fullscreen 返回设置中的全屏偏好
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Sequence 返回屏幕顺序控制器
func (a *App) Sequence() *game.Sequence {
	return a.sequence
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 释放当前场景和背景闪光并保存设置，可重复调用
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.sceneManager.Dispose()
	a.sparkles.Dispose()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Closed")
}
