package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/recipebox/internal/ports"
	"github.com/bft-labs/recipebox/pkg/log"
)

// Watch calls onChange whenever the file backing key is written, created or
// replaced. Bursts of events within debounce are collapsed into one call.
// onChange runs on the calling goroutine, one call at a time. It blocks
// until ctx is cancelled.
func (s *KeyFileStore) Watch(ctx context.Context, key string, debounce time.Duration, logger ports.Logger, onChange func()) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: atomic writes rename over the file, which drops
	// a watch placed on the file itself.
	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	name := filepath.Base(s.Path(key))
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fire:
			fire = nil
			onChange()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("blob changed", log.String("key", key), log.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", log.Err(err))
		}
	}
}
