package iconbake

import "math"

type LightType string

const (
	LightPoint LightType = "POINT"
	LightSun   LightType = "SUN"
)

// Light is light data attached to a LIGHT object. Energy is in watts for
// point lights and irradiance (W/m²) for sun lights.
type Light struct {
	Type   LightType
	Energy float64
	Color  Color
}

func NewPointLight(energy float64) *Light {
	return &Light{Type: LightPoint, Energy: energy, Color: White}
}

// wattsToRadiance converts point light power into shading units: a
// 1000 W light at 5 m gives roughly 1.0.
const wattsToRadiance = 1 / (4 * math.Pi * math.Pi)

// RigLight is a light resolved into world space for the shaders.
type RigLight struct {
	Position  Vector
	Direction Vector // sun lights: unit vector from the surface toward the light
	Sun       bool
	Color     Color // color scaled by energy
}

// NewRigLight places the light data of obj in the world.
func NewRigLight(obj *Object) RigLight {
	l := obj.Light
	if l.Type == LightSun {
		dir := EulerXYZ(obj.Rotation).MulDirection(Vector{0, 0, 1})
		return RigLight{Direction: dir, Sun: true, Color: l.Color.MulScalar(l.Energy)}
	}
	return RigLight{Position: obj.Location, Color: l.Color.MulScalar(l.Energy * wattsToRadiance)}
}

// Incident returns the unit direction from p toward the light and the
// radiance arriving at p.
func (l RigLight) Incident(p Vector) (Vector, Color) {
	if l.Sun {
		return l.Direction, l.Color
	}
	d := l.Position.Sub(p)
	dist2 := d.LengthSquared()
	if dist2 < 1e-9 {
		return Vector{}, Color{}
	}
	return d.Normalize(), l.Color.MulScalar(1 / dist2)
}
