package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-rush/internal/storage"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("IdleTimeout should be positive")
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game tuning invalid: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("run database should be open")
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory missing: %v", err)
	}
}

func TestSSHServerBestScore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = storage.MemoryPath

	logger := log.New(io.Discard)
	srv, err := NewSSHServer(cfg, logger)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if got := srv.bestScore(logger); got != 0 {
		t.Errorf("bestScore on an empty database = %d", got)
	}
	for _, score := range []int{40, 210, 95} {
		if _, err := srv.store.SaveRun(storage.Run{Player: "guest", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if got := srv.bestScore(logger); got != 210 {
		t.Errorf("bestScore = %d, expected 210", got)
	}

	store := srv.store
	srv.store = nil
	if got := srv.bestScore(logger); got != 0 {
		t.Errorf("bestScore without a store = %d", got)
	}
	srv.store = store
}
