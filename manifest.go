package iconbake

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultCollection receives objects that do not name a collection.
const DefaultCollection = "Collection"

// SceneFile is the on-disk form of a Scene, stored as TOML or YAML.
type SceneFile struct {
	// Camera names the active camera object.
	Camera      string            `toml:"camera,omitempty" yaml:"camera,omitempty"`
	Render      RenderSettings    `toml:"render,omitempty" yaml:"render,omitempty"`
	Collections []CollectionEntry `toml:"collections,omitempty" yaml:"collections,omitempty"`
	Objects     []ObjectEntry     `toml:"objects" yaml:"objects"`
}

type CollectionEntry struct {
	Name string `toml:"name" yaml:"name"`
}

// ObjectEntry describes one object. Rotation is in degrees. Relative mesh
// and texture paths are resolved against the scene file's directory.
type ObjectEntry struct {
	Name        string    `toml:"name" yaml:"name"`
	Type        string    `toml:"type,omitempty" yaml:"type,omitempty"`
	Collections []string  `toml:"collections,omitempty" yaml:"collections,omitempty"`
	Location    []float64 `toml:"location,omitempty" yaml:"location,omitempty"`
	Rotation    []float64 `toml:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale       []float64 `toml:"scale,omitempty" yaml:"scale,omitempty"`
	HideRender  bool      `toml:"hide_render,omitempty" yaml:"hide_render,omitempty"`

	Mesh         string `toml:"mesh,omitempty" yaml:"mesh,omitempty"`
	Color        string `toml:"color,omitempty" yaml:"color,omitempty"`
	Texture      string `toml:"texture,omitempty" yaml:"texture,omitempty"`
	VertexColors bool   `toml:"vertex_colors,omitempty" yaml:"vertex_colors,omitempty"`

	LightType string  `toml:"light_type,omitempty" yaml:"light_type,omitempty"`
	Energy    float64 `toml:"energy,omitempty" yaml:"energy,omitempty"`

	Lens        float64 `toml:"lens,omitempty" yaml:"lens,omitempty"`
	SensorWidth float64 `toml:"sensor_width,omitempty" yaml:"sensor_width,omitempty"`
	ClipStart   float64 `toml:"clip_start,omitempty" yaml:"clip_start,omitempty"`
	ClipEnd     float64 `toml:"clip_end,omitempty" yaml:"clip_end,omitempty"`
}

type sceneFormat int

const (
	formatTOML sceneFormat = iota
	formatYAML
)

func formatOf(path string) (sceneFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("iconbake: scene file %s: want .toml, .yaml or .yml", path)
}

// ReadSceneFile decodes a scene file, rejecting unknown keys.
func ReadSceneFile(path string) (*SceneFile, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sf := &SceneFile{}
	switch format {
	case formatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(sf)
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(sf); errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("iconbake: decode %s: %w", path, err)
	}
	return sf, nil
}

// WriteSceneFile encodes sf in the format given by the path extension.
func WriteSceneFile(path string, sf *SceneFile) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case formatTOML:
		data, err = toml.Marshal(sf)
	case formatYAML:
		data, err = yaml.Marshal(sf)
	}
	if err != nil {
		return fmt.Errorf("iconbake: encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadScene reads a scene file and loads every mesh and texture it
// references.
func LoadScene(path string) (*Scene, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	sf, err := ReadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return sf.Build(path)
}

// Build turns the file into a Scene rooted at path.
func (sf *SceneFile) Build(path string) (*Scene, error) {
	scene := NewScene(path)
	if err := scene.Render.Merge(sf.Render); err != nil {
		return nil, fmt.Errorf("iconbake: render settings: %w", err)
	}
	if err := scene.Render.Validate(); err != nil {
		return nil, err
	}

	collection := func(name string) *Collection {
		if c, ok := scene.Collection(name); ok {
			return c
		}
		return scene.NewCollection(name)
	}
	for _, c := range sf.Collections {
		if c.Name == "" {
			return nil, errors.New("iconbake: collection without a name")
		}
		collection(c.Name)
	}

	meshes := make(map[string]*Mesh)
	names := make(map[string]bool)
	for i := range sf.Objects {
		entry := &sf.Objects[i]
		if err := ValidateName(entry.Name); err != nil {
			return nil, fmt.Errorf("iconbake: object %d: %w", i, err)
		}
		if names[entry.Name] {
			return nil, fmt.Errorf("iconbake: duplicate object name %q", entry.Name)
		}
		names[entry.Name] = true

		o, err := entry.object(scene.Dir(), meshes)
		if err != nil {
			return nil, fmt.Errorf("iconbake: object %q: %w", entry.Name, err)
		}
		collections := entry.Collections
		if len(collections) == 0 {
			collections = []string{DefaultCollection}
		}
		for _, name := range collections {
			collection(name).Link(o)
		}
	}

	if sf.Camera != "" {
		cam, ok := scene.Object(sf.Camera)
		if !ok || cam.Kind != KindCamera {
			return nil, fmt.Errorf("iconbake: active camera %q is not a camera object", sf.Camera)
		}
		scene.Camera = cam
	}
	return scene, nil
}

func (e *ObjectEntry) object(dir string, meshes map[string]*Mesh) (*Object, error) {
	kind := ObjectKind(strings.ToUpper(e.Type))
	if kind == "" {
		kind = KindMesh
	}
	o := newObject(e.Name, kind)
	var err error
	if o.Location, err = vectorOf(e.Location, Vector{}); err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	rotation, err := vectorOf(e.Rotation, Vector{})
	if err != nil {
		return nil, fmt.Errorf("rotation: %w", err)
	}
	o.Rotation = rotation.Radians()
	if o.Scale, err = vectorOf(e.Scale, Vector{1, 1, 1}); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	if o.Scale.X == 0 || o.Scale.Y == 0 || o.Scale.Z == 0 {
		return nil, fmt.Errorf("scale %v has a zero component", e.Scale)
	}
	o.HideRender = e.HideRender
	if e.Color != "" {
		if o.Color, err = ParseHexColor(e.Color); err != nil {
			return nil, err
		}
	}

	switch kind {
	case KindMesh:
		if e.Mesh == "" {
			return nil, errors.New("mesh object needs a mesh file")
		}
		path, err := resolve(dir, e.Mesh)
		if err != nil {
			return nil, err
		}
		mesh, ok := meshes[path]
		if !ok {
			if mesh, err = LoadMesh(path); err != nil {
				return nil, err
			}
			meshes[path] = mesh
		}
		o.Mesh = mesh.Copy()
		o.MeshPath = path
		o.UseVertexColor = e.VertexColors
		if e.Texture != "" {
			if o.TexturePath, err = resolve(dir, e.Texture); err != nil {
				return nil, err
			}
			if o.Texture, err = LoadTexture(o.TexturePath); err != nil {
				return nil, err
			}
		}
	case KindCamera:
		cam := NewCamera()
		setIf(&cam.Lens, e.Lens)
		setIf(&cam.SensorWidth, e.SensorWidth)
		setIf(&cam.ClipStart, e.ClipStart)
		setIf(&cam.ClipEnd, e.ClipEnd)
		if cam.Lens <= 0 || cam.SensorWidth <= 0 || cam.ClipStart <= 0 || cam.ClipEnd <= cam.ClipStart {
			return nil, fmt.Errorf("invalid camera %+v", *cam)
		}
		o.Camera = cam
	case KindLight:
		light := NewPointLight(e.Energy)
		if e.LightType != "" {
			light.Type = LightType(strings.ToUpper(e.LightType))
		}
		if light.Type != LightPoint && light.Type != LightSun {
			return nil, fmt.Errorf("light type %q must be POINT or SUN", e.LightType)
		}
		if e.Energy == 0 {
			light.Energy = 1000
			if light.Type == LightSun {
				light.Energy = 1
			}
		}
		if e.Color != "" {
			light.Color = o.Color
		}
		o.Light = light
	case KindEmpty:
	default:
		return nil, fmt.Errorf("unknown object type %q", e.Type)
	}
	return o, nil
}

func vectorOf(v []float64, def Vector) (Vector, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return Vector{v[0], v[1], v[2]}, nil
	}
	return Vector{}, fmt.Errorf("want 3 components, got %d", len(v))
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func resolve(dir, path string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(dir, path), nil
}

// MeshExtensions lists the mesh file types LoadMesh understands.
var MeshExtensions = []string{".obj", ".stl", ".gltf", ".glb"}

// ScanMeshes builds a scene file that puts every mesh file found directly
// in dir into the Target collection, named after the file.
func ScanMeshes(dir string) (*SceneFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sf := &SceneFile{Collections: []CollectionEntry{{Name: TargetCollection}}}
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !contains(MeshExtensions, ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if seen[name] {
			return nil, fmt.Errorf("iconbake: two mesh files named %q in %s", name, dir)
		}
		seen[name] = true
		sf.Objects = append(sf.Objects, ObjectEntry{
			Name:        name,
			Type:        string(KindMesh),
			Collections: []string{TargetCollection},
			Mesh:        entry.Name(),
		})
	}
	sort.Slice(sf.Objects, func(i, j int) bool { return sf.Objects[i].Name < sf.Objects[j].Name })
	return sf, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
