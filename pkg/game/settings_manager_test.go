package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if !settings.MusicEnabled {
		t.Error("MusicEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.IsPersistent() {
		t.Error("IsPersistent() should be false without gdata")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if !settings.MusicEnabled {
		t.Error("Degraded mode MusicEnabled: got false, want true")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("In-memory setting lost after Save() in degraded mode")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_card_settings")

	sm1 := NewSettingsManager(gdataManager)
	if !sm1.IsPersistent() {
		t.Fatal("IsPersistent() should be true with gdata")
	}
	if sm1.GetSettings().Fullscreen {
		t.Error("Fresh store should start with defaults")
	}

	sm1.SetFullscreen(true)
	sm1.SetMusicEnabled(false)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.MusicEnabled {
		t.Error("Loaded MusicEnabled: got true, want false")
	}
}

// TestSettingsPartialData 测试缺失字段回落到默认值
func TestSettingsPartialData(t *testing.T) {
	gdataManager := openTestGdata(t, "test_card_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()

	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if !settings.MusicEnabled {
		t.Error("MusicEnabled should keep its default when missing")
	}
}

// TestSettingsCorruptData 测试损坏的数据回落到默认值
func TestSettingsCorruptData(t *testing.T) {
	gdataManager := openTestGdata(t, "test_card_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()

	if settings.Fullscreen || !settings.MusicEnabled {
		t.Errorf("Corrupt data should fall back to defaults, got %+v", *settings)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
}
