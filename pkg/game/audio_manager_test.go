package game

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestAudioManagerMusicDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetMusicEnabled(false)
	am := NewAudioManager(newTestResourceManager(t), sm)

	if am.MusicEnabled() {
		t.Error("MusicEnabled() should follow settings")
	}

	player, err := am.OpenMusic("SOUND_SONG")
	if !errors.Is(err, ErrPlaybackDenied) {
		t.Errorf("OpenMusic() error = %v, want ErrPlaybackDenied", err)
	}
	if player != nil {
		t.Error("no player expected when music is disabled")
	}
}

func TestAudioManagerOpenMusicErrors(t *testing.T) {
	rm := newTestResourceManager(t)
	am := NewAudioManager(rm, nil)

	if !am.MusicEnabled() {
		t.Error("music should be enabled without settings")
	}

	// 资源配置未加载
	if _, err := am.OpenMusic("SOUND_SONG"); err == nil {
		t.Error("expected error before resource config is loaded")
	}

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	// 文件存在但格式不支持
	_, err := am.OpenMusic("SOUND_SONG")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if errors.Is(err, ErrPlaybackDenied) {
		t.Error("decode failures are not settings denials")
	}
}

func TestAudioManagerGate(t *testing.T) {
	if gate := NewAudioManager(nil, nil).Gate(); gate != nil {
		t.Error("Gate() without resource manager should be nil")
	}

	noAudio := NewResourceManager(nil, fstest.MapFS{})
	if gate := NewAudioManager(noAudio, nil).Gate(); gate != nil {
		t.Error("Gate() without audio context should be nil")
	}

	if gate := NewAudioManager(newTestResourceManager(t), nil).Gate(); gate == nil {
		t.Error("Gate() should expose the audio context")
	}
}
