package iconbake

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSceneTOML = `
camera = "Cam"

[render]
resolutions = [128, 64]
target_size = 1.5
front_plane = "YZ"
shading = "toon"
outline = true

[[collections]]
name = "Target"

[[collections]]
name = "Props"

[[objects]]
name = "crate"
collections = ["Target", "Props"]
mesh = "cube.obj"
color = "#8b5a2b"
location = [1, 2, 3]
rotation = [90, 0, 0]

[[objects]]
name = "loose"
mesh = "cube.obj"

[[objects]]
name = "Cam"
type = "camera"
lens = 35
location = [0, -10, 0]

[[objects]]
name = "Sun"
type = "light"
light_type = "sun"
`

const fullSceneYAML = `
camera: Cam
render:
  resolutions: [128, 64]
  target_size: 1.5
  front_plane: YZ
  shading: toon
  outline: true
collections:
  - name: Target
  - name: Props
objects:
  - name: crate
    collections: [Target, Props]
    mesh: cube.obj
    color: "#8b5a2b"
    location: [1, 2, 3]
    rotation: [90, 0, 0]
  - name: loose
    mesh: cube.obj
  - name: Cam
    type: camera
    lens: 35
    location: [0, -10, 0]
  - name: Sun
    type: light
    light_type: sun
`

func TestLoadScene(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"scene.toml", fullSceneTOML},
		{"scene.yaml", fullSceneYAML},
		{"scene.yml", fullSceneYAML},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "cube.obj", cubeOBJ)
			scene, err := LoadScene(writeFile(t, dir, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, dir, scene.Dir())
			assert.Equal(t, []int{128, 64}, scene.Render.Resolutions)
			assert.Equal(t, 1.5, scene.Render.TargetSize)
			assert.Equal(t, PlaneYZ, scene.Render.FrontPlane)
			assert.Equal(t, ShadingToon, scene.Render.Shading)
			assert.True(t, scene.Render.Outline)
			assert.Equal(t, "Icons", scene.Render.IconsDir, "defaults kept")
			assert.Equal(t, 2, scene.Render.Supersample)

			var names []string
			for _, c := range scene.Collections() {
				names = append(names, c.Name)
			}
			assert.Equal(t, []string{TargetCollection, "Props", DefaultCollection}, names)

			crate, ok := scene.Object("crate")
			require.True(t, ok)
			assert.Equal(t, KindMesh, crate.Kind)
			assert.Len(t, crate.UsersCollection(), 2)
			assert.Equal(t, filepath.Join(dir, "cube.obj"), crate.MeshPath)
			assert.Equal(t, "#8b5a2b", crate.Color.Hex())
			assert.Equal(t, Vector{1, 2, 3}, crate.Location)
			assert.InDelta(t, math.Pi/2, crate.Rotation.X, 1e-12)

			loose, ok := scene.Object("loose")
			require.True(t, ok)
			assert.NotSame(t, crate.Mesh, loose.Mesh, "shared files load into separate meshes")

			require.NotNil(t, scene.Camera)
			assert.Equal(t, "Cam", scene.Camera.Name)
			assert.Equal(t, 35.0, scene.Camera.Camera.Lens)
			assert.Equal(t, 36.0, scene.Camera.Camera.SensorWidth)

			sun, ok := scene.Object("Sun")
			require.True(t, ok)
			assert.Equal(t, LightSun, sun.Light.Type)
			assert.Equal(t, 1.0, sun.Light.Energy)
			assert.True(t, scene.LightsExist())
		})
	}
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown extension", "scene.json", `{}`, "want .toml"},
		{"unknown toml key", "s.toml", "colour = 1\n", "decode"},
		{"unknown yaml key", "s.yaml", "colour: 1\n", "decode"},
		{"duplicate names", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"empty\"\n[[objects]]\nname = \"a\"\ntype = \"empty\"\n", "duplicate"},
		{"path in name", "s.toml", "[[objects]]\nname = \"a/b\"\ntype = \"empty\"\n", "invalid object name"},
		{"mesh without file", "s.toml", "[[objects]]\nname = \"a\"\n", "needs a mesh"},
		{"missing mesh file", "s.toml", "[[objects]]\nname = \"a\"\nmesh = \"nope.obj\"\n", "nope.obj"},
		{"bad type", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"curve\"\n", "unknown object type"},
		{"bad light", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"light\"\nlight_type = \"area\"\n", "POINT or SUN"},
		{"bad camera", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"camera\"\nclip_start = 200\n", "invalid camera"},
		{"zero scale", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"empty\"\nscale = [1, 0, 1]\n", "zero component"},
		{"bad vector", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"empty\"\nlocation = [1, 2]\n", "location"},
		{"bad color", "s.toml", "[[objects]]\nname = \"a\"\ntype = \"empty\"\ncolor = \"red\"\n", "hex color"},
		{"camera not found", "s.toml", "camera = \"Cam\"\n", "active camera"},
		{"camera not a camera", "s.toml", "camera = \"a\"\n[[objects]]\nname = \"a\"\ntype = \"empty\"\n", "active camera"},
		{"bad render settings", "s.toml", "[render]\nfront_plane = \"XZ\"\n", "front plane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := LoadScene(writeFile(t, dir, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEmptySceneFiles(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		dir := t.TempDir()
		scene, err := LoadScene(writeFile(t, dir, name, ""))
		require.NoError(t, err, name)
		assert.Empty(t, scene.Objects())
		assert.Equal(t, DefaultRenderSettings(), scene.Render)
	}
}

func TestScanMeshes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sword.obj", cubeOBJ)
	writeFile(t, dir, "Axe.OBJ", cubeOBJ)
	writeFile(t, dir, "notes.txt", "ignore me")

	sf, err := ScanMeshes(dir)
	require.NoError(t, err)
	require.Len(t, sf.Objects, 2)
	assert.Equal(t, "Axe", sf.Objects[0].Name)
	assert.Equal(t, "Axe.OBJ", sf.Objects[0].Mesh)
	assert.Equal(t, "sword", sf.Objects[1].Name)
	assert.Equal(t, []string{TargetCollection}, sf.Objects[1].Collections)

	for _, name := range []string{"scene.toml", "scene.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteSceneFile(path, sf))
		scene, err := LoadScene(path)
		require.NoError(t, err, name)
		target, ok := scene.Collection(TargetCollection)
		require.True(t, ok)
		assert.Len(t, target.Objects(), 2)
	}

	writeFile(t, dir, "sword.stl", "solid")
	_, err = ScanMeshes(dir)
	assert.ErrorContains(t, err, "two mesh files")
}
