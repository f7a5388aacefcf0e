package iconbake

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned for object names that cannot be used as an
// output directory.
var ErrInvalidName = errors.New("iconbake: invalid object name")

type ObjectKind string

const (
	KindMesh   ObjectKind = "MESH"
	KindCamera ObjectKind = "CAMERA"
	KindLight  ObjectKind = "LIGHT"
	KindEmpty  ObjectKind = "EMPTY"
)

// Object is a named node of a Scene. Which data field is set depends on
// Kind. Rotation holds XYZ Euler angles in radians.
type Object struct {
	Name     string
	Kind     ObjectKind
	Location Vector
	Rotation Vector
	Scale    Vector

	Mesh     *Mesh
	MeshPath string
	Camera   *Camera
	Light    *Light

	Color          Color
	Texture        Texture
	TexturePath    string
	UseVertexColor bool

	HideRender bool
	Selected   bool

	collections []*Collection
}

func newObject(name string, kind ObjectKind) *Object {
	return &Object{Name: name, Kind: kind, Scale: Vector{1, 1, 1}, Color: HexColor("b4b4b4")}
}

func NewEmptyObject(name string) *Object {
	return newObject(name, KindEmpty)
}

func NewMeshObject(name string, mesh *Mesh) *Object {
	o := newObject(name, KindMesh)
	o.Mesh = mesh
	return o
}

func NewCameraObject(name string, camera *Camera) *Object {
	o := newObject(name, KindCamera)
	o.Camera = camera
	return o
}

func NewLightObject(name string, light *Light) *Object {
	o := newObject(name, KindLight)
	o.Light = light
	return o
}

// Matrix is the object's world transform: translate * rotate * scale.
func (o *Object) Matrix() Matrix {
	return Translate(o.Location).Mul(EulerXYZ(o.Rotation)).Mul(Scale(o.Scale))
}

// BoundBox returns the eight corners of the mesh bounding box in object
// space, or nil for objects without geometry.
func (o *Object) BoundBox() []Vector {
	if o.Mesh == nil || len(o.Mesh.Triangles) == 0 {
		return nil
	}
	return o.Mesh.BoundingBox().Corners()
}

// WorldBoundBox returns BoundBox transformed into world space.
func (o *Object) WorldBoundBox() []Vector {
	corners := o.BoundBox()
	m := o.Matrix()
	for i, c := range corners {
		corners[i] = m.MulPosition(c)
	}
	return corners
}

// UsersCollection lists the collections the object is linked to.
func (o *Object) UsersCollection() []*Collection {
	return append([]*Collection(nil), o.collections...)
}

func (o *Object) SelectSet(selected bool) {
	o.Selected = selected
}

func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.Name, o.Kind)
}

// ValidateName rejects names that would escape or collapse the per-object
// icon directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}
