package iconbake

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/effect"
	"github.com/nfnt/resize"
)

// ErrNoCamera is returned when a scene without an active camera is
// rendered.
var ErrNoCamera = errors.New("iconbake: scene has no active camera")

// Renderer draws a scene through its active camera.
type Renderer struct {
	Logger *slog.Logger
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Render draws every mesh object that is not hidden, lit by every light
// that is not hidden, using scene.Render.
func (r *Renderer) Render(scene *Scene) (image.Image, error) {
	settings := scene.Render
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cam := scene.Camera
	if cam == nil || cam.Camera == nil {
		return nil, ErrNoCamera
	}

	width := settings.ResolutionX * settings.Supersample
	height := settings.ResolutionY * settings.Supersample
	aspect := float64(settings.ResolutionX) / float64(settings.ResolutionY)
	viewProjection := cam.Camera.ViewProjection(cam, aspect)

	var lights []RigLight
	var objects []*Object
	for _, o := range scene.Objects() {
		if o.HideRender {
			continue
		}
		switch o.Kind {
		case KindLight:
			if o.Light != nil {
				lights = append(lights, NewRigLight(o))
			}
		case KindMesh:
			if o.Mesh == nil {
				r.logger().Warn("object attempted to render with nil mesh", "object", o.Name)
				continue
			}
			objects = append(objects, r.levelOfDetail(o, settings))
		}
	}

	shader := newShader(settings, viewProjection, cam.Location, lights)
	dc := NewContext(width, height, shader)
	dc.Wireframe = settings.Wireframe
	dc.LineWidth = float64(settings.Supersample)
	if !settings.FilmTransparent {
		dc.ClearColor = HexColor(settings.WorldColor).Alpha(1)
	}
	dc.Clear()

	if settings.Outline {
		outline := NewSolidColorShader(viewProjection, HexColor(settings.OutlineColor))
		outline.Thickness = settings.OutlineThickness
		dc.Shader = outline
		dc.Cull = CullFront
		for _, o := range objects {
			dc.DrawObject(o)
		}
		dc.Shader = shader
		dc.Cull = CullBack
	}
	for _, o := range objects {
		dc.DrawObject(o)
	}

	var img image.Image = dc.Image()
	if settings.Supersample > 1 {
		img = resize.Resize(uint(settings.ResolutionX), uint(settings.ResolutionY), img, resize.Lanczos3)
	}
	if settings.SharpenBelow > 0 && max(settings.ResolutionX, settings.ResolutionY) <= settings.SharpenBelow {
		img = effect.Sharpen(img)
	}
	if settings.ColorMode == "RGB" {
		img = flatten(img, HexColor(settings.WorldColor))
	}
	return img, nil
}

// levelOfDetail swaps in a decimated mesh for small renders. Textured and
// vertex-colored objects keep their mesh since decimation drops those
// attributes.
func (r *Renderer) levelOfDetail(o *Object, s RenderSettings) *Object {
	res := max(s.ResolutionX, s.ResolutionY)
	if s.SimplifyBelow <= 0 || res > s.SimplifyBelow || s.SimplifyFactor >= 1 {
		return o
	}
	if o.Texture != nil || o.UseVertexColor {
		return o
	}
	lod := *o
	lod.Mesh = o.Mesh.Simplify(s.SimplifyFactor)
	r.logger().Debug("simplified mesh", "object", o.Name,
		"triangles", len(o.Mesh.Triangles), "kept", len(lod.Mesh.Triangles))
	return &lod
}

func newShader(s RenderSettings, viewProjection Matrix, eye Vector, lights []RigLight) Shader {
	switch s.Shading {
	case ShadingToon:
		return NewToonShader(viewProjection, lights)
	case ShadingSolid:
		solid := NewSolidColorShader(viewProjection, White)
		solid.UseObjectColor = true
		return solid
	default:
		phong := NewPhongShader(viewProjection, eye, lights, HexColor(s.Ambient))
		phong.SpecularPower = s.SpecularPower
		return phong
	}
}

func flatten(img image.Image, background Color) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, &image.Uniform{C: background.Alpha(1).NRGBA()}, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}

// RenderToWriter renders the scene and encodes it as PNG.
func (r *Renderer) RenderToWriter(scene *Scene, w io.Writer) error {
	img, err := r.Render(scene)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// RenderToFile renders the scene into a PNG at path, creating missing
// directories.
func (r *Renderer) RenderToFile(scene *Scene, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("iconbake: create output dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iconbake: could not create file: %w", err)
	}
	if err := r.RenderToWriter(scene, file); err != nil {
		file.Close()
		return fmt.Errorf("iconbake: render %s: %w", path, err)
	}
	return file.Close()
}
