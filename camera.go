package iconbake

import "math"

// Camera is a perspective camera. Like a physical camera it is described
// by focal length and sensor width; the sensor fits the wider image axis.
// The camera looks down its local -Z axis with +Y up.
type Camera struct {
	Lens        float64 // mm
	SensorWidth float64 // mm
	ClipStart   float64
	ClipEnd     float64
}

func NewCamera() *Camera {
	return &Camera{Lens: 50, SensorWidth: 36, ClipStart: 0.1, ClipEnd: 100}
}

// FovY returns the vertical field of view in degrees for the aspect ratio
// width/height.
func (c *Camera) FovY(aspect float64) float64 {
	half := math.Atan(c.SensorWidth / (2 * c.Lens))
	if aspect > 1 {
		half = math.Atan(math.Tan(half) / aspect)
	}
	return 2 * half * 180 / math.Pi
}

// ViewProjection returns the world to clip transform for a camera placed
// by obj.
func (c *Camera) ViewProjection(obj *Object, aspect float64) Matrix {
	rot := EulerXYZ(obj.Rotation)
	eye := obj.Location
	forward := rot.MulDirection(Vector{0, 0, -1})
	up := rot.MulDirection(Vector{0, 1, 0})
	return LookAt(eye, eye.Add(forward), up).Perspective(c.FovY(aspect), aspect, c.ClipStart, c.ClipEnd)
}
