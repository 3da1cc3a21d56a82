package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestSessionManager 创建测试专用的 gdata Manager，环境不支持时返回 nil
func createTestSessionManager(t *testing.T, testName string) *gdata.Manager {
	t.Setenv("HOME", t.TempDir())

	appName := fmt.Sprintf("moonmission_session_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()

	if _, ok := store.Get(GameCompletedKey); ok {
		t.Fatal("new store should be empty")
	}

	if err := store.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, ok := store.Get(GameCompletedKey); !ok || v != "true" {
		t.Errorf("Get() = %q, %v; want \"true\", true", v, ok)
	}

	if err := store.Delete(GameCompletedKey); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok := store.Get(GameCompletedKey); ok {
		t.Error("key should be gone after Delete")
	}

	// 删除不存在的键不报错
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestGdataSessionStoreRoundTrip(t *testing.T) {
	manager := createTestSessionManager(t, "roundtrip")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewGdataSessionStore(manager)

	if _, ok := store.Get(GameCompletedKey); ok {
		t.Fatal("fresh gdata store should not contain the flag")
	}

	if err := store.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// 进程内重新加载沿用同一个 store
	reloaded := store
	if v, ok := reloaded.Get(GameCompletedKey); !ok || v != "true" {
		t.Errorf("Get() after reload = %q, %v; want \"true\", true", v, ok)
	}

	if err := reloaded.Delete(GameCompletedKey); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok := reloaded.Get(GameCompletedKey); ok {
		t.Error("flag should be gone after Delete")
	}
	if err := reloaded.Delete(GameCompletedKey); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
}

func TestGdataSessionStoreStartupHandoff(t *testing.T) {
	manager := createTestSessionManager(t, "handoff")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewGdataSessionStore(manager)
	if err := store.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	nav, _ := newTestNavigator()
	if got := nav.Start(store); got != PageMoon {
		t.Errorf("Start() = %s, want Moon", got)
	}
	if _, ok := store.Get(GameCompletedKey); ok {
		t.Error("flag should be consumed by Start")
	}
}

func TestOpenSessionStoreNeverNil(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := OpenSessionStore(fmt.Sprintf("moonmission_open_test_%d", time.Now().UnixNano()))
	if store == nil {
		t.Fatal("OpenSessionStore must always return a usable store")
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, ok := store.Get("k"); !ok || v != "v" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	_ = store.Delete("k")
}

func TestGdataSessionStoreDiscardsOtherSession(t *testing.T) {
	manager := createTestSessionManager(t, "stale")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	previous := newGdataSessionStore(manager, "previous")
	if err := previous.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// 同一个 manager 上的新会话：打开时清理旧值
	current := newGdataSessionStore(manager, "current")
	if _, ok := current.Get(GameCompletedKey); ok {
		t.Error("value from another session should be treated as absent")
	}
	if manager.ObjectPropExists(sessionObject, GameCompletedKey) {
		t.Error("stale value should be deleted on open")
	}

	// 打开之后才写入的旧会话值在读取时丢弃
	if err := previous.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok := current.Get(GameCompletedKey); ok {
		t.Error("stale value should be ignored by Get")
	}
	if manager.ObjectPropExists(sessionObject, GameCompletedKey) {
		t.Error("stale value should be deleted by Get")
	}
}

func TestGameCompletedDoesNotSurviveRelaunch(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	appName := fmt.Sprintf("moonmission_relaunch_test_%d", time.Now().UnixNano())

	// 第一次启动：小游戏通关后窗口在重新加载前被关闭
	first := OpenSessionStore(appName)
	if err := first.Set(GameCompletedKey, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// 第二次启动必须从口令门开始
	second := OpenSessionStore(appName)
	nav, _ := newTestNavigator()
	if got := nav.Start(second); got != PageGate {
		t.Errorf("Start() after relaunch = %s, want Gate", got)
	}
}
