package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write a file several times in a row.
const watchDebounce = 100 * time.Millisecond

// CheckFile reads and validates a tuning file.
func CheckFile(path string) (TowerRushConfig, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Watch checks path once, then again every time it changes, passing each
// result to fn. It blocks until ctx is done. The parent directory is
// watched so that editors replacing the file by rename are seen.
//
// Watch never touches a running session: tuning is read once per process.
func Watch(ctx context.Context, path string, fn func(TowerRushConfig, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	fn(CheckFile(abs))

	// Re-check once the file has been quiet for watchDebounce.
	settle := time.NewTimer(watchDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			settle.Reset(watchDebounce)
		case <-settle.C:
			fn(CheckFile(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("config: watch: %w", err)
		}
	}
}
