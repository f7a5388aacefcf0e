package iconbake

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchedScene = `
[[objects]]
name = "cube"
mesh = "cube.obj"
texture = "skins/cube.png"

[[objects]]
name = "marker"
type = "empty"
`

func TestSceneInputs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.toml", watchedScene)

	inputs, err := SceneInputs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		path,
		filepath.Join(dir, "cube.obj"),
		filepath.Join(dir, "skins", "cube.png"),
	}, inputs)

	_, err = SceneInputs(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestWatchStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.toml", watchedScene)

	ctx, cancel := context.WithCancel(context.Background())
	runs := 0
	err := Watch(ctx, path, discardLogger(), func(context.Context) error {
		runs++
		cancel()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestWatchRerunsOnChange(t *testing.T) {
	defer func(d time.Duration) { WatchDelay = d }(WatchDelay)
	WatchDelay = 20 * time.Millisecond

	dir := t.TempDir()
	writeFile(t, dir, "cube.obj", cubeOBJ)
	path := writeFile(t, dir, "scene.toml", "[[objects]]\nname = \"cube\"\nmesh = \"cube.obj\"\n")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, discardLogger(), func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()

	<-runs
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for rerun := false; !rerun; {
		select {
		case <-ticker.C:
			require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.obj"), []byte(cubeOBJ), 0o644))
		case <-runs:
			rerun = true
		case <-ctx.Done():
			t.Fatal("no rerun after the mesh changed")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
