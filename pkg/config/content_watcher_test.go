package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestContentWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mission.yaml")
	if err := os.WriteFile(path, []byte("title: \"First\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cw, err := NewContentWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer cw.Close()

	if err := os.WriteFile(path, []byte("title: \"Second\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if cfg := cw.Poll(); cfg != nil {
			if cfg.Title != "Second" {
				t.Errorf("Title = %q, want %q", cfg.Title, "Second")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("no reload received within 5s")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestContentWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mission.yaml")
	if err := os.WriteFile(path, []byte("title: \"First\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cw, err := NewContentWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer cw.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("title: x\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	if cfg := cw.Poll(); cfg != nil {
		t.Errorf("unexpected reload for unrelated file: %+v", cfg.Title)
	}
}

func TestContentWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	cw, err := NewContentWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if cfg := cw.Poll(); cfg != nil {
		t.Error("Poll() after Close should return nil")
	}
}
