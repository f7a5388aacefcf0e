package iconbake

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGLTFConvertsToZUp(t *testing.T) {
	doc := gltf.NewDocument()
	positions := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	uvs := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}, {0, 0.25}})
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 3, 1})
	doc.Meshes = []*gltf.Mesh{{
		Name: "wedge",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: map[string]int{gltf.POSITION: positions, gltf.TEXCOORD_0: uvs},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "wedge", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []int{0}

	path := filepath.Join(t.TempDir(), "wedge.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	mesh, err := LoadMesh(path)
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 2)

	// glTF +Y is up, which becomes +Z; glTF +Z faces the viewer, which
	// becomes -Y.
	tri := mesh.Triangles[0]
	vectorsEqual(t, Vector{1, 0, 0}, tri.V2.Position)
	vectorsEqual(t, Vector{0, 0, 1}, tri.V3.Position)
	vectorsEqual(t, Vector{0, -1, 0}, mesh.Triangles[1].V2.Position)
	assert.InDelta(t, 0.75, mesh.Triangles[1].V2.Texture.Y, 1e-6)

	box := mesh.BoundingBox()
	vectorsEqual(t, Vector{0, -1, 0}, box.Min)
	vectorsEqual(t, Vector{1, 0, 1}, box.Max)
}

func TestLoadSTL(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	triangles := [][4][3]float32{
		{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(triangles))))
	for _, tri := range triangles {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, tri))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	path := filepath.Join(t.TempDir(), "quad.stl")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	mesh, err := LoadMesh(path)
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 2)
	vectorsEqual(t, Vector{0.5, 0.5, 0}, mesh.BoundingBox().Center())
	vectorsEqual(t, Vector{0, 0, 1}, mesh.Triangles[0].V1.Normal)
}

func TestLoadGLTFBadAttributes(t *testing.T) {
	tests := []struct {
		name      string
		attribute string
		want      string
	}{
		{"normals", gltf.NORMAL, "normals"},
		{"texture coordinates", gltf.TEXCOORD_0, "texture coordinates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := gltf.NewDocument()
			positions := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
			// A scalar accessor cannot hold normals or UVs.
			scalars := modeler.WriteIndices(doc, []uint16{0, 1, 2})
			doc.Meshes = []*gltf.Mesh{{
				Name: "broken",
				Primitives: []*gltf.Primitive{{
					Attributes: map[string]int{gltf.POSITION: positions, tt.attribute: scalars},
				}},
			}}
			path := filepath.Join(t.TempDir(), "broken.glb")
			require.NoError(t, gltf.SaveBinary(doc, path))

			_, err := LoadGLTF(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
