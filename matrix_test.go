package iconbake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEulerXYZ(t *testing.T) {
	tests := []struct {
		name     string
		rotation Vector
		in       Vector
		want     Vector
	}{
		{"identity", Vector{}, Vector{1, 2, 3}, Vector{1, 2, 3}},
		{"x 90 turns -Z forward into +Y", Vector{math.Pi / 2, 0, 0}, Vector{0, 0, -1}, Vector{0, 1, 0}},
		{"x 90 turns +Y up into +Z", Vector{math.Pi / 2, 0, 0}, Vector{0, 1, 0}, Vector{0, 0, 1}},
		{"z 90", Vector{0, 0, math.Pi / 2}, Vector{1, 0, 0}, Vector{0, 1, 0}},
		{"y 90", Vector{0, math.Pi / 2, 0}, Vector{0, 0, 1}, Vector{1, 0, 0}},
		// X is applied first, then Z.
		{"x then z", Vector{math.Pi / 2, 0, math.Pi / 2}, Vector{0, 1, 0}, Vector{0, 0, 1}},
		{"x then z on x axis", Vector{math.Pi / 2, 0, math.Pi / 2}, Vector{1, 0, 0}, Vector{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vectorsEqual(t, tt.want, EulerXYZ(tt.rotation).MulPosition(tt.in))
		})
	}
}

func TestMatrixInverse(t *testing.T) {
	m := Translate(Vector{1, 2, 3}).Mul(EulerXYZ(Vector{0.3, -0.7, 1.1})).Mul(Scale(Vector{2, 3, 4}))
	p := Vector{0.5, -2, 7}
	vectorsEqual(t, p, m.Inverse().MulPosition(m.MulPosition(p)))
	assert.InDelta(t, 24, m.Determinant(), 1e-9)
}

func TestNormalMatrixKeepsNormalsPerpendicular(t *testing.T) {
	m := Scale(Vector{4, 1, 1})
	// Plane x + y = 0 has normal (1, 1, 0).
	tangent := m.MulPosition(Vector{1, -1, 0})
	normal := m.NormalMatrix().MulDirection(Vector{1, 1, 0})
	assert.InDelta(t, 0, tangent.Dot(normal), 1e-9)
}

func TestRenderCameraProjection(t *testing.T) {
	cam := NewCameraObject(RenderCameraName, NewCamera())
	cam.Location = Vector{0, -4, 0}
	cam.Rotation = Vector{math.Pi / 2, 0, 0}
	vp := cam.Camera.ViewProjection(cam, 1)

	ndc := func(p Vector) Vector {
		v := vp.MulPositionW(p)
		return Vector{v.X / v.W, v.Y / v.W, v.Z / v.W}
	}

	origin := ndc(Vector{})
	assert.InDelta(t, 0, origin.X, 1e-9)
	assert.InDelta(t, 0, origin.Y, 1e-9)
	assert.True(t, origin.Z > -1 && origin.Z < 1, "origin inside clip range: %v", origin)

	assert.Greater(t, ndc(Vector{0.5, 0, 0}).X, 0.0, "+X is right")
	assert.Greater(t, ndc(Vector{0, 0, 0.5}).Y, 0.0, "+Z is up")

	// A 2 unit object at the origin fits inside the frame.
	for _, c := range (Box{Vector{-1, -1, -1}, Vector{1, 1, 1}}).Corners() {
		p := ndc(c)
		assert.True(t, math.Abs(p.X) < 1 && math.Abs(p.Y) < 1, "corner %v projects to %v", c, p)
	}
}

func TestCameraFovY(t *testing.T) {
	c := NewCamera()
	square := c.FovY(1)
	assert.InDelta(t, 2*math.Atan(0.36)*180/math.Pi, square, 1e-9)
	assert.Less(t, c.FovY(2), square, "wide images fit the sensor horizontally")
	assert.InDelta(t, square, c.FovY(0.5), 1e-9)
}
