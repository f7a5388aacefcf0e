package iconbake

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file and merges every triangle primitive
// into one mesh. glTF is Y-up; vertices are converted to the Z-up frame
// used by scenes, matching what authoring tools do on import.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("gltf: mesh %q: %w", mesh.Name, err)
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				if normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil); err != nil {
					return nil, fmt.Errorf("gltf: mesh %q: normals: %w", mesh.Name, err)
				}
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				if texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil); err != nil {
					return nil, fmt.Errorf("gltf: mesh %q: texture coordinates: %w", mesh.Name, err)
				}
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("gltf: mesh %q: %w", mesh.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertex := func(i uint32) (Vertex, error) {
				var v Vertex
				if int(i) >= len(positions) {
					return v, fmt.Errorf("gltf: mesh %q: index %d out of range", mesh.Name, i)
				}
				v.Position = yUpToZUp(positions[i])
				if int(i) < len(normals) {
					v.Normal = yUpToZUp(normals[i])
				}
				if int(i) < len(texCoords) {
					// glTF puts the UV origin at the top left.
					v.Texture = Vector{float64(texCoords[i][0]), 1 - float64(texCoords[i][1]), 0}
				}
				return v, nil
			}

			for i := 0; i+2 < len(indices); i += 3 {
				v1, err := vertex(indices[i])
				if err != nil {
					return nil, err
				}
				v2, err := vertex(indices[i+1])
				if err != nil {
					return nil, err
				}
				v3, err := vertex(indices[i+2])
				if err != nil {
					return nil, err
				}
				allTriangles = append(allTriangles, NewTriangle(v1, v2, v3))
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("gltf: no triangles found in %s", path)
	}

	return NewTriangleMesh(allTriangles), nil
}

func yUpToZUp(p [3]float32) Vector {
	return Vector{float64(p[0]), -float64(p[2]), float64(p[1])}
}
