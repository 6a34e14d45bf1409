package game

import (
	"errors"
	"log"
	"math"

	"github.com/decker502/anniversary/pkg/config"
	"github.com/decker502/anniversary/pkg/utils"
)

// ErrPlaybackDenied 播放未被允许（资源缺失、音乐被关闭或等待播放许可超时）
var ErrPlaybackDenied = errors.New("playback denied")

// MusicPlayer 背景音乐播放器
// *audio.Player 满足此接口
type MusicPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Volume() float64
	Close() error
}

// PlaybackGate 播放许可
// *audio.Context 满足此接口：浏览器等平台需要用户手势之后才就绪
type PlaybackGate interface {
	IsReady() bool
}

// FaderState 淡入控制器状态
type FaderState int

const (
	// FaderIdle 尚未调用 Start
	FaderIdle FaderState = iota
	// FaderPending 已请求播放，等待播放许可
	FaderPending
	// FaderFading 正在淡入
	FaderFading
	// FaderHolding 淡入结束（到达上限或被静音），保持当前音量
	FaderHolding
	// FaderDenied 播放被拒绝，静默继续
	FaderDenied
	// FaderReleased 已释放
	FaderReleased
)

// String 返回状态名称
func (s FaderState) String() string {
	switch s {
	case FaderIdle:
		return "idle"
	case FaderPending:
		return "pending"
	case FaderFading:
		return "fading"
	case FaderHolding:
		return "holding"
	case FaderDenied:
		return "denied"
	case FaderReleased:
		return "released"
	default:
		return "unknown"
	}
}

// MusicFader 背景音乐淡入控制器
//
// 职责：
//   - 循环播放一首音乐，从 0 音量开始
//   - 每隔 Interval 秒增加 Step 音量，直到 Ceiling 或被静音
//   - 静音开关：静音时输出 0 音量但保留淡入到达的音量，取消静音时恢复
//
// 由揭晓页独占持有，页面卸载时调用 Dispose。
// 所有计时由自己的 Scheduler 驱动，Dispose 后不会再有任何淡入回调。
type MusicFader struct {
	player MusicPlayer
	gate   PlaybackGate
	cfg    config.FadeConfig

	scheduler *utils.Scheduler
	fadeTask  *utils.Task
	waited    float64

	state FaderState
	level float64 // 淡入到达的音量（与静音无关）
	muted bool
}

// NewMusicFader 创建淡入控制器
//
// 参数：
//   - player: 音乐播放器，可为 nil（资源缺失时降级为无声）
//   - gate: 播放许可，可为 nil（视为始终就绪）
//   - cfg: 淡入参数
func NewMusicFader(player MusicPlayer, gate PlaybackGate, cfg config.FadeConfig) *MusicFader {
	return &MusicFader{
		player:    player,
		gate:      gate,
		cfg:       cfg,
		scheduler: utils.NewScheduler(),
	}
}

// Start 请求开始播放
//
// 播放许可就绪时立即开始淡入；否则进入等待状态，由 Update 轮询。
// 播放被拒绝时只记录日志，不影响页面。
func (f *MusicFader) Start() {
	if f.state != FaderIdle {
		return
	}

	if f.player == nil {
		f.deny("no music player")
		return
	}

	f.player.SetVolume(0)
	if f.gate == nil || f.gate.IsReady() {
		f.begin()
		return
	}

	f.state = FaderPending
	log.Printf("[MusicFader] 等待播放许可（最长 %.1fs）", f.cfg.StartTimeout)
}

// Update 推进淡入计时
func (f *MusicFader) Update(deltaTime float64) {
	switch f.state {
	case FaderPending:
		if f.gate.IsReady() {
			f.begin()
			break
		}
		f.waited += deltaTime
		if f.waited >= f.cfg.StartTimeout {
			f.deny("autoplay prevented")
		}
	case FaderFading:
		f.scheduler.Update(deltaTime)
	}
}

// begin 开始播放并启动淡入任务
func (f *MusicFader) begin() {
	f.level = 0
	f.apply()
	f.player.Play()
	f.state = FaderFading
	f.fadeTask = f.scheduler.Every(f.cfg.Interval, f.tick)
	log.Printf("[MusicFader] 开始播放，淡入至 %.2f", f.cfg.Ceiling)
}

// tick 一次淡入
func (f *MusicFader) tick() {
	if f.muted || f.level >= f.cfg.Ceiling {
		f.stopFade()
		return
	}

	f.level = math.Min(f.level+f.cfg.Step, f.cfg.Ceiling)
	f.apply()

	if f.level >= f.cfg.Ceiling {
		f.stopFade()
	}
}

// stopFade 取消淡入任务，保持当前音量
func (f *MusicFader) stopFade() {
	if f.fadeTask != nil {
		f.fadeTask.Cancel()
		f.fadeTask = nil
	}
	if f.state == FaderFading {
		f.state = FaderHolding
	}
}

// deny 播放被拒绝
func (f *MusicFader) deny(reason string) {
	f.state = FaderDenied
	log.Printf("[MusicFader] Autoplay prevented: %v (%s)", ErrPlaybackDenied, reason)
}

// ToggleMute 切换静音
//
// 静音会停止淡入（取消淡入任务），取消静音恢复到最后一次淡入到达的音量，
// 不会重新开始淡入。
//
// 返回：
//   - bool: 切换后的静音状态
func (f *MusicFader) ToggleMute() bool {
	f.muted = !f.muted
	if f.muted {
		f.stopFade()
	}
	f.apply()
	log.Printf("[MusicFader] muted=%v level=%.2f", f.muted, f.level)
	return f.muted
}

// apply 把静音状态和淡入音量写入播放器
func (f *MusicFader) apply() {
	if f.player == nil || f.state == FaderReleased {
		return
	}
	if f.muted {
		f.player.SetVolume(0)
		return
	}
	f.player.SetVolume(f.level)
}

// Dispose 停止播放并释放播放器，可重复调用
func (f *MusicFader) Dispose() {
	if f.state == FaderReleased {
		return
	}

	f.scheduler.CancelAll()
	f.fadeTask = nil

	if f.player != nil {
		f.player.Pause()
		if err := f.player.Close(); err != nil {
			log.Printf("[MusicFader] Warning: failed to close player: %v", err)
		}
		f.player = nil
	}

	f.state = FaderReleased
	log.Printf("[MusicFader] 已释放")
}

// State 返回当前状态
func (f *MusicFader) State() FaderState {
	return f.state
}

// Level 返回淡入到达的音量
func (f *MusicFader) Level() float64 {
	return f.level
}

// Muted 返回是否静音
func (f *MusicFader) Muted() bool {
	return f.muted
}
