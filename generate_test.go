package iconbake

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconSceneTOML = `
[render]
resolutions = [32, 16]
supersample = 1

[[collections]]
name = "Target"

[[objects]]
name = "cube"
collections = ["Target"]
mesh = "cube.obj"
scale = [3, 3, 3]

[[objects]]
name = "big cube"
collections = ["Target"]
mesh = "cube.obj"
location = [10, 0, 0]
rotation = [0, 0, 45]

[[objects]]
name = "marker"
type = "empty"
collections = ["Target"]
`

func TestIconPath(t *testing.T) {
	assert.Equal(t, filepath.Join("scenes", "Icons", "sword", "256.png"),
		IconPath(filepath.Join("scenes", "Icons"), "sword", 256))
	assert.Equal(t, filepath.Join("scenes", "Icons"), IconsDir(NewScene(filepath.Join("scenes", "props.toml"))))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cube.obj", cubeOBJ)
	scene, err := LoadScene(writeFile(t, dir, "props.toml", iconSceneTOML))
	require.NoError(t, err)

	g := NewGenerator(scene, discardLogger())
	report, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.TargetFound)
	assert.True(t, report.SetupCreated)
	assert.Equal(t, []string{"KeyLight", "FillLight", "BackLight"}, report.LightsCreated)
	assert.Equal(t, filepath.Join(dir, "Icons"), report.IconsDir)
	assert.Equal(t, []string{"cube", "big cube"}, report.Objects)

	var want []string
	for _, name := range report.Objects {
		for _, res := range []int{32, 16} {
			want = append(want, IconPath(report.IconsDir, name, res))
		}
	}
	assert.Equal(t, want, report.Files)

	for _, path := range report.Files {
		f, err := os.Open(path)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a, "%s has a transparent corner", path)
	}
	assert.NoDirExists(t, filepath.Join(dir, "Icons", "marker"))

	for _, name := range report.Objects {
		o, ok := scene.Object(name)
		require.True(t, ok)
		dims := DimensionsOf(o.WorldBoundBox())
		assert.InDelta(t, 2, max(dims.Width, dims.Depth), 1e-9, name)
		assert.Equal(t, Vector{}, o.Location)
	}
	assert.Same(t, scene.Camera, mustObject(t, scene, RenderCameraName))
	assert.Equal(t, 16, scene.Render.ResolutionX)

	again, err := NewGenerator(scene, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, again.SetupCreated)
	assert.Empty(t, again.LightsCreated)
	setup, _ := scene.Collection(SetupCollection)
	assert.Len(t, setup.Objects(), 4)
	assert.Equal(t, report.Files, again.Files)
}

func mustObject(t *testing.T, scene *Scene, name string) *Object {
	t.Helper()
	o, ok := scene.Object(name)
	require.True(t, ok, name)
	return o
}

func TestRunWithoutTarget(t *testing.T) {
	dir := t.TempDir()
	scene := NewScene(filepath.Join(dir, "empty.toml"))
	scene.NewCollection(DefaultCollection).Link(NewMeshObject("cube", cubeMesh(t)))

	report, err := NewGenerator(scene, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.TargetFound)
	assert.Empty(t, report.Files)
	assert.NoDirExists(t, filepath.Join(dir, "Icons"))
	_, ok := scene.Collection(SetupCollection)
	assert.False(t, ok)
}

func TestRunKeepsExistingLights(t *testing.T) {
	dir := t.TempDir()
	scene := NewScene(filepath.Join(dir, "lit.toml"))
	scene.Render.Resolutions = []int{16}
	scene.Render.Supersample = 1
	scene.NewCollection(TargetCollection).Link(NewMeshObject("cube", cubeMesh(t)))
	lamp := NewLightObject("Lamp", NewPointLight(2000))
	lamp.Location = Vector{0, -6, 0}
	scene.NewCollection("Lamps").Link(lamp)

	report, err := NewGenerator(scene, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.LightsCreated)
	assert.Len(t, report.Files, 1)
	assert.False(t, lamp.HideRender)
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	scene := NewScene(filepath.Join(dir, "s.toml"))
	scene.NewCollection(TargetCollection).Link(NewMeshObject("cube", cubeMesh(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := NewGenerator(scene, discardLogger()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Files)
}

func TestRunDegenerateMesh(t *testing.T) {
	dir := t.TempDir()
	scene := NewScene(filepath.Join(dir, "s.toml"))
	scene.NewCollection(TargetCollection).Link(NewMeshObject("nothing", NewTriangleMesh(nil)))

	_, err := NewGenerator(scene, discardLogger()).Run(context.Background())
	assert.ErrorIs(t, err, ErrDegenerateObject)
}

func TestRenderObjectRejectsBadNames(t *testing.T) {
	scene, cube := iconScene(t)
	cube.Name = "../escape"
	_, err := NewGenerator(scene, discardLogger()).RenderObject(cube, 16, t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidName)
}
