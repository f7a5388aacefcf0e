package iconbake

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateObject is returned when an object has no extent on the
// axes used to fit it to the camera.
var ErrDegenerateObject = errors.New("iconbake: object has no extent on the front plane")

// Dimensions are the world-space extents of an object along each axis.
type Dimensions struct {
	Width  float64 // X
	Depth  float64 // Y
	Height float64 // Z
}

// DimensionsOf measures the axis-aligned extent of a set of points, usually
// the eight world-space bounding-box corners of an object.
func DimensionsOf(corners []Vector) Dimensions {
	size := BoxForPoints(corners).Size()
	return Dimensions{Width: size.X, Depth: size.Y, Height: size.Z}
}

// Largest returns the larger of the two dimensions spanning plane.
func (d Dimensions) Largest(plane FrontPlane) float64 {
	switch plane {
	case PlaneYZ:
		return math.Max(d.Height, d.Depth)
	case PlaneZX:
		return math.Max(d.Width, d.Height)
	default:
		return math.Max(d.Width, d.Depth)
	}
}

// ScaleFactor is the uniform scale that makes the largest front-plane
// dimension equal targetSize.
func ScaleFactor(d Dimensions, plane FrontPlane, targetSize float64) (float64, error) {
	largest := d.Largest(plane)
	if !(largest > 0) || math.IsInf(largest, 0) {
		return 0, fmt.Errorf("%w: largest %s dimension is %g", ErrDegenerateObject, plane, largest)
	}
	return targetSize / largest, nil
}

// ApplyScale bakes the object's scale into its mesh and resets the scale.
func ApplyScale(o *Object) {
	o.Mesh.Transform(Scale(o.Scale))
	o.Scale = Vector{1, 1, 1}
}

// ApplyRotation bakes the object's rotation into its mesh and clears it.
func ApplyRotation(o *Object) {
	o.Mesh.Transform(EulerXYZ(o.Rotation))
	o.Rotation = Vector{}
}

// OriginToGeometryBounds moves the object origin to the center of its
// mesh bounds without moving the geometry in the world.
func OriginToGeometryBounds(o *Object) {
	center := o.Mesh.BoundingBox().Center()
	o.Location = o.Matrix().MulPosition(center)
	o.Mesh.Transform(Translate(center.Negate()))
}

func ClearLocation(o *Object) {
	o.Location = Vector{}
}

// ScaleObjectToFitCamera sets a uniform object scale so the largest side
// of the front plane bounding box equals targetSize. The scale is not
// baked into the mesh.
func (g *Generator) ScaleObjectToFitCamera(o *Object, targetSize float64) error {
	g.EnsureObjectMode()

	dims := DimensionsOf(o.WorldBoundBox())
	g.log().Info("object bounding box dimensions", "object", o.Name,
		"width", dims.Width, "depth", dims.Depth, "height", dims.Height)

	plane := g.Scene.Render.FrontPlane
	factor, err := ScaleFactor(dims, plane, targetSize)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Name, err)
	}
	g.log().Info("scaling object to fit the front plane", "object", o.Name,
		"plane", plane, "largest", dims.Largest(plane), "scale_factor", factor)
	o.Scale = Vector{factor, factor, factor}
	return nil
}

// StandardizeObject applies scale and rotation, centers the origin on the
// geometry, clears the location and scales the object to fit the camera.
func (g *Generator) StandardizeObject(o *Object) error {
	log := g.log().With("object", o.Name)
	log.Info("processing object")
	if o.Mesh == nil || len(o.Mesh.Triangles) == 0 {
		return fmt.Errorf("%w: %s has no geometry", ErrDegenerateObject, o.Name)
	}
	if o.Scale.X == 0 || o.Scale.Y == 0 || o.Scale.Z == 0 {
		return fmt.Errorf("%w: %s has zero scale %v", ErrDegenerateObject, o.Name, o.Scale)
	}
	log.Info("initial transform", "rotation", o.Rotation, "scale", o.Scale)

	o.SelectSet(true)
	defer o.SelectSet(false)

	log.Debug("applying scale")
	ApplyScale(o)
	log.Debug("applying rotation")
	ApplyRotation(o)
	log.Debug("setting origin to center of geometry")
	OriginToGeometryBounds(o)
	log.Debug("clearing location")
	ClearLocation(o)
	log.Debug("scaling object to fit camera")
	return g.ScaleObjectToFitCamera(o, g.Scene.Render.TargetSize)
}
