package iconbake

import (
	"github.com/fogleman/simplify"
)

// Mesh is a list of triangles in object space.
type Mesh struct {
	Triangles []*Triangle
	box       *Box
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

func (m *Mesh) dirty() {
	m.box = nil
}

// Copy returns a deep copy so transforms can be baked without touching
// the source.
func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		c := *t
		triangles[i] = &c
	}
	return NewTriangleMesh(triangles)
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		var box Box
		for i, t := range m.Triangles {
			if i == 0 {
				box = t.BoundingBox()
				continue
			}
			b := t.BoundingBox()
			box = Box{box.Min.Min(b.Min), box.Max.Max(b.Max)}
		}
		m.box = &box
	}
	return *m.box
}

// Transform bakes matrix into every vertex. Normals go through the
// inverse-transpose so non-uniform scales keep them perpendicular.
func (m *Mesh) Transform(matrix Matrix) {
	normals := matrix.NormalMatrix()
	for _, t := range m.Triangles {
		t.Transform(matrix, normals)
	}
	m.dirty()
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// Simplify returns a decimated copy keeping roughly factor of the
// triangles. Texture coordinates and vertex colors are dropped and flat
// normals recomputed, which is fine for silhouettes at small sizes.
func (m *Mesh) Simplify(factor float64) *Mesh {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		st[i] = simplify.NewTriangle(toSimplify(t.V1.Position), toSimplify(t.V2.Position), toSimplify(t.V3.Position))
	}
	out := simplify.NewMesh(st).Simplify(factor)
	return meshFromSimplify(out)
}

func toSimplify(v Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromSimplify(v simplify.Vector) Vector {
	return Vector{v.X, v.Y, v.Z}
}

func meshFromSimplify(sm *simplify.Mesh) *Mesh {
	triangles := make([]*Triangle, 0, len(sm.Triangles))
	for _, t := range sm.Triangles {
		triangles = append(triangles, NewTriangleForPoints(fromSimplify(t.V1), fromSimplify(t.V2), fromSimplify(t.V3)))
	}
	return NewTriangleMesh(triangles)
}
