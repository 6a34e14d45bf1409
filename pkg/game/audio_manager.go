package game

import (
	"fmt"
	"log"
)

// AudioManager 音频管理器
// 职责：
//   - 为揭晓页打开背景音乐播放器（通过资源ID，无需关心路径）
//   - 与设置联动：音乐被关闭时不创建播放器
//   - 提供播放许可（audio.Context 就绪状态）
//
// 播放器不做缓存：每次 OpenMusic 返回新的播放器，由调用方负责 Close。
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于加载音频）
	settingsManager *SettingsManager // 设置管理器（用于读取音乐开关，可为 nil）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音乐开关，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// MusicEnabled 音乐开关是否打开
func (am *AudioManager) MusicEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().MusicEnabled
}

// OpenMusic 为 musicID 创建一个暂停状态的循环播放器
//
// 返回：
//   - MusicPlayer: 新的播放器，调用方负责 Close
//   - error: 音乐被关闭时返回 ErrPlaybackDenied；资源缺失或解码失败时返回包装后的错误
func (am *AudioManager) OpenMusic(musicID string) (MusicPlayer, error) {
	if !am.MusicEnabled() {
		return nil, fmt.Errorf("music %s: %w (disabled in settings)", musicID, ErrPlaybackDenied)
	}
	if am.resourceManager == nil {
		return nil, fmt.Errorf("music %s: no resource manager", musicID)
	}

	player, err := am.resourceManager.LoadMusicByID(musicID)
	if err != nil {
		return nil, fmt.Errorf("failed to open music %s: %w", musicID, err)
	}

	log.Printf("[AudioManager] 打开音乐: %s", musicID)
	return player, nil
}

// Gate 返回播放许可；没有音频上下文时返回 nil（视为始终就绪）
func (am *AudioManager) Gate() PlaybackGate {
	if am.resourceManager == nil {
		return nil
	}
	ctx := am.resourceManager.AudioContext()
	if ctx == nil {
		return nil
	}
	return ctx
}
