package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/odvcencio/buckle/pkg/errors"
)

const reloadDebounce = 50 * time.Millisecond

// ReloadFunc receives the reloaded configuration, or the error that
// prevented reloading it. A failed reload leaves the caller's current
// configuration in place.
type ReloadFunc func(cfg *Config, err error)

// Watch reloads path with LoadFromPath whenever it changes and hands the
// result to fn. The parent directory is watched so editors that replace
// the file by rename are still seen. Bursts of events are coalesced.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "resolving config path").
			WithContext("path", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "creating watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "watching config directory").
			WithContext("path", abs)
	}

	timer := time.NewTimer(reloadDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(reloadDebounce)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, errors.Wrap(werr, errors.ErrCodeConfigLoad, "watch error").WithContext("path", abs))
		case <-timer.C:
			fn(LoadFromPath(abs))
		}
	}
}
