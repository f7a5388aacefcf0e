package iconbake

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

var EmptyBox = Box{}

// BoxForPoints returns the smallest box containing every point.
func BoxForPoints(points []Vector) Box {
	if len(points) == 0 {
		return EmptyBox
	}
	box := Box{points[0], points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	x0, y0, z0 := math.Inf(1), math.Inf(1), math.Inf(1)
	x1, y1, z1 := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, box := range boxes {
		x0 = math.Min(x0, box.Min.X)
		y0 = math.Min(y0, box.Min.Y)
		z0 = math.Min(z0, box.Min.Z)
		x1 = math.Max(x1, box.Max.X)
		y1 = math.Max(y1, box.Max.Y)
		z1 = math.Max(z1, box.Max.Z)
	}
	return Box{Vector{x0, y0, z0}, Vector{x1, y1, z1}}
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Center() Vector {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

// Corners returns the eight corners of the box.
func (a Box) Corners() []Vector {
	n, x := a.Min, a.Max
	return []Vector{
		{n.X, n.Y, n.Z},
		{n.X, n.Y, x.Z},
		{n.X, x.Y, x.Z},
		{n.X, x.Y, n.Z},
		{x.X, n.Y, n.Z},
		{x.X, n.Y, x.Z},
		{x.X, x.Y, x.Z},
		{x.X, x.Y, n.Z},
	}
}

func (a Box) Translate(v Vector) Box {
	return Box{a.Min.Add(v), a.Max.Add(v)}
}
