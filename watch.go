package iconbake

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long Watch waits for changes to settle.
var WatchDelay = 250 * time.Millisecond

// SceneInputs lists the scene file and every mesh and texture file it
// references, as cleaned absolute-or-relative paths.
func SceneInputs(scenePath string) ([]string, error) {
	sf, err := ReadSceneFile(scenePath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(scenePath)
	files := []string{filepath.Clean(scenePath)}
	for _, o := range sf.Objects {
		for _, p := range []string{o.Mesh, o.Texture} {
			if p == "" {
				continue
			}
			resolved, err := resolve(dir, p)
			if err != nil {
				return nil, err
			}
			files = append(files, filepath.Clean(resolved))
		}
	}
	return files, nil
}

// Watch calls run once and then again each time the scene file or one of
// its inputs changes, until ctx is done. Directories are watched rather
// than files so editors that save by renaming are still seen. Errors from
// run are logged and do not stop the watch.
func Watch(ctx context.Context, scenePath string, logger *slog.Logger, run func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	inputs := make(map[string]bool)
	dirs := make(map[string]bool)
	refresh := func() {
		files, err := SceneInputs(scenePath)
		if err != nil {
			logger.Warn("cannot read scene inputs", "scene", scenePath, "err", err)
			files = []string{filepath.Clean(scenePath)}
		}
		clear(inputs)
		for _, f := range files {
			inputs[f] = true
			dir := filepath.Dir(f)
			if dirs[dir] {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				logger.Warn("cannot watch directory", "dir", dir, "err", err)
				continue
			}
			dirs[dir] = true
		}
	}
	runOnce := func() {
		if err := run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("run failed", "scene", scenePath, "err", err)
		}
		refresh()
		logger.Info("watching for changes", "scene", scenePath, "files", len(inputs))
	}

	trigger := make(chan struct{}, 1)
	debounced := debounce.New(WatchDelay)
	runOnce()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !inputs[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", "file", event.Name, "op", event.Op.String())
			debounced(func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}
