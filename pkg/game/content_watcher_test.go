package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/folio/pkg/config"
)

func writeContent(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitUpdate(w *ContentWatcher, timeout time.Duration) *config.Portfolio {
	select {
	case p := <-w.Updates():
		return p
	case <-time.After(timeout):
		return nil
	}
}

// TestContentWatcherReload 修改文件后收到新内容
func TestContentWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	writeContent(t, path, "owner:\n  name: Before\n")

	w, err := NewContentWatcher(path)
	if err != nil {
		t.Fatalf("NewContentWatcher() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeContent(t, path, "owner:\n  name: After\n")

	p := waitUpdate(w, 5*time.Second)
	if p == nil {
		t.Fatal("no update received")
	}
	if p.Owner.Name != "After" {
		t.Errorf("Owner.Name = %q, want After", p.Owner.Name)
	}
}

// TestContentWatcherInvalidKeepsPrevious 无效内容不会发送
func TestContentWatcherInvalidKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	writeContent(t, path, "owner:\n  name: Valid\n")

	w, err := NewContentWatcher(path)
	if err != nil {
		t.Fatalf("NewContentWatcher() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeContent(t, path, "owner: [")
	if p := waitUpdate(w, 500*time.Millisecond); p != nil {
		t.Fatalf("invalid content produced an update: %+v", p)
	}

	// 同目录的其他文件不触发重载
	writeContent(t, filepath.Join(dir, "other.yaml"), "owner:\n  name: Other\n")
	if p := waitUpdate(w, 500*time.Millisecond); p != nil {
		t.Fatalf("unrelated file produced an update: %+v", p)
	}

	writeContent(t, path, "owner:\n  name: Fixed\n")
	p := waitUpdate(w, 5*time.Second)
	if p == nil || p.Owner.Name != "Fixed" {
		t.Fatalf("update after fix = %+v", p)
	}
}

func TestNewContentWatcherMissingDir(t *testing.T) {
	if _, err := NewContentWatcher(filepath.Join(t.TempDir(), "nope", "portfolio.yaml")); err == nil {
		t.Error("expected error for missing directory")
	}
}

// TestContentWatcherStops ctx 取消后 Run 返回
func TestContentWatcherStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.toml")
	writeContent(t, path, "[owner]\nname = \"T\"\n")

	w, err := NewContentWatcher(path)
	if err != nil {
		t.Fatalf("NewContentWatcher() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
