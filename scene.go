package iconbake

import (
	"path/filepath"
)

// Scene holds the collections of a scene file together with its active
// camera and render settings.
type Scene struct {
	// Path is the scene file the scene was loaded from. Output folders
	// are created beside it.
	Path   string
	Camera *Object
	Render RenderSettings

	collections []*Collection
}

func NewScene(path string) *Scene {
	return &Scene{Path: path, Render: DefaultRenderSettings()}
}

// Dir is the directory containing the scene file.
func (s *Scene) Dir() string {
	if s.Path == "" {
		return "."
	}
	return filepath.Dir(s.Path)
}

func (s *Scene) Collections() []*Collection {
	return append([]*Collection(nil), s.collections...)
}

func (s *Scene) Collection(name string) (*Collection, bool) {
	for _, c := range s.collections {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// NewCollection creates a collection and links it to the scene. It does
// not check for an existing collection with the same name.
func (s *Scene) NewCollection(name string) *Collection {
	c := NewCollection(name)
	s.collections = append(s.collections, c)
	return c
}

// Objects returns every object linked to any collection, each once, in
// order of first appearance.
func (s *Scene) Objects() []*Object {
	seen := make(map[*Object]bool)
	var result []*Object
	for _, c := range s.collections {
		for _, o := range c.objects {
			if !seen[o] {
				seen[o] = true
				result = append(result, o)
			}
		}
	}
	return result
}

func (s *Scene) Object(name string) (*Object, bool) {
	for _, o := range s.Objects() {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// LightsExist reports whether any light object is present.
func (s *Scene) LightsExist() bool {
	for _, o := range s.Objects() {
		if o.Kind == KindLight {
			return true
		}
	}
	return false
}
