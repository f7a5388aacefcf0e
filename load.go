package iconbake

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ErrUnknownMeshFormat is returned for mesh files with an unsupported
// extension.
var ErrUnknownMeshFormat = errors.New("iconbake: unknown mesh format")

// LoadMesh picks a loader from the file extension: .obj, .stl, .gltf or
// .glb. A leading ~ is expanded to the home directory.
func LoadMesh(path string) (*Mesh, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	var mesh *Mesh
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = LoadOBJ(path)
	case ".stl":
		mesh, err = LoadSTL(path)
	case ".gltf", ".glb":
		mesh, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeshFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("iconbake: load mesh %s: %w", path, err)
	}
	return mesh, nil
}
