package iconbake

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iconScene is a half-size cube in Target lit by the default rig.
func iconScene(t *testing.T) (*Scene, *Object) {
	t.Helper()
	scene := NewScene("")
	cube := NewMeshObject("cube", cubeMesh(t))
	cube.Scale = Vector{0.5, 0.5, 0.5}
	scene.NewCollection(TargetCollection).Link(cube)

	g := NewGenerator(scene, discardLogger())
	setup, _ := g.CreateSetupCollection()
	scene.Camera = g.AddCameraToCollection(setup)
	g.AddThreePointLightingToCollection(setup)

	scene.Render.SetResolution(64)
	scene.Render.Supersample = 1
	return scene, cube
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestRenderTransparentBackground(t *testing.T) {
	shadings := []Shading{ShadingPhong, ShadingToon, ShadingSolid}
	for _, shading := range shadings {
		t.Run(string(shading), func(t *testing.T) {
			scene, _ := iconScene(t)
			scene.Render.Shading = shading
			r := &Renderer{Logger: discardLogger()}

			img, err := r.Render(scene)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
			assert.Zero(t, alphaAt(img, 0, 0))
			assert.Zero(t, alphaAt(img, 63, 63))
			assert.Equal(t, uint32(0xffff), alphaAt(img, 32, 32))

			cr, cg, cb, _ := img.At(32, 32).RGBA()
			assert.NotZero(t, cr+cg+cb, "lit face is not black")
		})
	}
}

func TestRenderSupersampleAndSharpen(t *testing.T) {
	scene, _ := iconScene(t)
	scene.Render.Supersample = 3
	scene.Render.SharpenBelow = 64
	scene.Render.Outline = true

	img, err := (&Renderer{}).Render(scene)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Zero(t, alphaAt(img, 0, 0))
	assert.NotZero(t, alphaAt(img, 32, 32))
}

func TestRenderRGB(t *testing.T) {
	scene, _ := iconScene(t)
	scene.Render.ColorMode = "RGB"
	scene.Render.FilmTransparent = false

	img, err := (&Renderer{}).Render(scene)
	require.NoError(t, err)
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0x4040), r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
}

func TestRenderHiddenObjects(t *testing.T) {
	scene, cube := iconScene(t)
	cube.HideRender = true

	img, err := (&Renderer{}).Render(scene)
	require.NoError(t, err)
	assert.Zero(t, alphaAt(img, 32, 32))
}

func TestRenderSimplifiedBelowThreshold(t *testing.T) {
	scene, cube := iconScene(t)
	scene.Render.SimplifyBelow = 64
	scene.Render.SimplifyFactor = 0.5

	img, err := (&Renderer{}).Render(scene)
	require.NoError(t, err)
	assert.NotZero(t, alphaAt(img, 32, 32))
	assert.Len(t, cube.Mesh.Triangles, 12, "source mesh untouched")
}

func TestRenderErrors(t *testing.T) {
	scene, _ := iconScene(t)
	scene.Camera = nil
	_, err := (&Renderer{}).Render(scene)
	assert.ErrorIs(t, err, ErrNoCamera)

	scene, _ = iconScene(t)
	scene.Render.Shading = "ray traced"
	_, err = (&Renderer{}).Render(scene)
	assert.ErrorContains(t, err, "shading")
}

func TestRenderToWriterPNG(t *testing.T) {
	scene, _ := iconScene(t)
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).RenderToWriter(scene, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
