package iconbake

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Generator runs the icon pipeline over one scene. Each step is exported
// so callers can run parts of it.
type Generator struct {
	Scene    *Scene
	Logger   *slog.Logger
	Renderer *Renderer
}

func NewGenerator(scene *Scene, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{Scene: scene, Logger: logger, Renderer: &Renderer{Logger: logger}}
}

func (g *Generator) log() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// Report summarizes a run.
type Report struct {
	TargetFound   bool
	SetupCreated  bool
	LightsCreated []string
	IconsDir      string
	Objects       []string
	Files         []string
}

// EnsureObjectMode exists for parity with interactive tools; scenes are
// always in object mode.
func (g *Generator) EnsureObjectMode() {
	g.log().Debug("object mode")
}

// IconsDir is the icon root beside the scene file.
func IconsDir(scene *Scene) string {
	return filepath.Join(scene.Dir(), scene.Render.IconsDir)
}

// IconPath is where the icon of the named object at resolution is written.
func IconPath(iconsDir, objectName string, resolution int) string {
	return filepath.Join(iconsDir, objectName, fmt.Sprintf("%d.png", resolution))
}

// CreateIconsFolder creates the icon root if it is missing and returns it.
func (g *Generator) CreateIconsFolder() (string, error) {
	dir := IconsDir(g.Scene)
	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("iconbake: create icons folder: %w", err)
	}
	g.log().Info("created icons folder", "path", dir)
	return dir, nil
}

// SetupRenderSettings switches the scene to a square transparent PNG
// render at resolution.
func (g *Generator) SetupRenderSettings(resolution int) {
	g.Scene.Render.SetResolution(resolution)
	g.log().Debug("render settings updated", "resolution", fmt.Sprintf("%dx%d", resolution, resolution))
}

// RenderObject hides everything except o and the lights, renders the
// scene and writes outputDir/<resolution>.png.
func (g *Generator) RenderObject(o *Object, resolution int, outputDir string) (string, error) {
	if err := ValidateName(o.Name); err != nil {
		return "", err
	}
	for _, other := range g.Scene.Objects() {
		other.HideRender = other != o && other.Kind != KindLight
	}

	path := filepath.Join(outputDir, fmt.Sprintf("%d.png", resolution))
	g.log().Info("rendering", "object", o.Name, "resolution", resolution)
	if err := g.Renderer.RenderToFile(g.Scene, path); err != nil {
		return "", err
	}
	g.log().Info("saved render", "path", path)
	return path, nil
}

// Run standardizes every mesh in the Target collection, sets up the
// camera and lights and renders every mesh at every resolution. A scene
// without a Target collection is left untouched.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	g.EnsureObjectMode()

	target, ok := g.Scene.Collection(TargetCollection)
	if !ok {
		g.log().Warn("collection does not exist", "collection", TargetCollection)
		return report, nil
	}
	report.TargetFound = true
	if err := g.Scene.Render.Validate(); err != nil {
		return report, err
	}

	setup, created := g.CreateSetupCollection()
	report.SetupCreated = created

	camera := g.AddCameraToCollection(setup)
	lights := g.AddThreePointLightingToCollection(setup)
	for _, l := range lights {
		report.LightsCreated = append(report.LightsCreated, l.Name)
	}
	g.Scene.Camera = camera
	g.EnsureUniqueInCollection(setup, append([]*Object{camera}, lights...))
	g.log().Info("setup complete", "collection", setup.Name, "camera", camera.Name, "lights", len(lights))

	iconsDir, err := g.CreateIconsFolder()
	if err != nil {
		return report, err
	}
	report.IconsDir = iconsDir

	meshes := make([]*Object, 0, len(target.objects))
	for _, o := range target.Objects() {
		if o.Kind == KindMesh {
			meshes = append(meshes, o)
		}
	}
	for _, o := range meshes {
		if err := g.StandardizeObject(o); err != nil {
			return report, err
		}
	}

	resolutions := append([]int(nil), g.Scene.Render.Resolutions...)
	for _, o := range meshes {
		g.log().Info("processing object", "object", o.Name)
		dir := filepath.Join(iconsDir, o.Name)
		for _, res := range resolutions {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			g.SetupRenderSettings(res)
			path, err := g.RenderObject(o, res, dir)
			if err != nil {
				return report, err
			}
			report.Files = append(report.Files, path)
		}
		report.Objects = append(report.Objects, o.Name)
	}

	g.log().Info("rendering complete", "icons", iconsDir, "objects", len(report.Objects), "files", len(report.Files))
	return report, nil
}
