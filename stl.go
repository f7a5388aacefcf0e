package iconbake

import (
	"github.com/fogleman/simplify"
)

// LoadSTL loads a binary STL file. STL carries positions only, so flat
// normals are derived from the winding.
func LoadSTL(path string) (*Mesh, error) {
	sm, err := simplify.LoadBinarySTL(path)
	if err != nil {
		return nil, err
	}
	return meshFromSimplify(sm), nil
}
