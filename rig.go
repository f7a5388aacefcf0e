package iconbake

import "math"

const (
	TargetCollection = "Target"
	SetupCollection  = "Setup"
	RenderCameraName = "RenderCamera"
)

// threePointRig is the key, fill and back light placement.
var threePointRig = []struct {
	name     string
	energy   float64
	location Vector
}{
	{"KeyLight", 3000, Vector{5, -5, 5}},
	{"FillLight", 1500, Vector{-5, -5, 5}},
	{"BackLight", 900, Vector{0, 5, 5}},
}

// CreateSetupCollection returns the Setup collection, creating it when it
// is missing. created reports whether a new collection was made.
func (g *Generator) CreateSetupCollection() (setup *Collection, created bool) {
	if c, ok := g.Scene.Collection(SetupCollection); ok {
		g.log().Info("collection already exists", "collection", SetupCollection)
		return c, false
	}
	c := g.Scene.NewCollection(SetupCollection)
	g.log().Info("created collection", "collection", SetupCollection)
	return c, true
}

// AddCameraToCollection links the render camera into c, looking at the
// origin from -Y. An existing RenderCamera is reused and moved back into
// place rather than duplicated.
func (g *Generator) AddCameraToCollection(c *Collection) *Object {
	g.log().Info("adding camera", "collection", c.Name)
	cam, ok := g.Scene.Object(RenderCameraName)
	if !ok || cam.Kind != KindCamera || cam.Camera == nil {
		cam = NewCameraObject(RenderCameraName, NewCamera())
	}
	cam.Location = Vector{0, -4, 0}
	cam.Rotation = Vector{math.Pi / 2, 0, 0}
	c.Link(cam)
	return cam
}

// AddThreePointLightingToCollection adds key, fill and back point lights
// to c unless the scene already has lights, in which case nothing is
// added and nil is returned.
func (g *Generator) AddThreePointLightingToCollection(c *Collection) []*Object {
	if g.Scene.LightsExist() {
		g.log().Info("lights already exist in the scene, skipping light setup")
		return nil
	}
	g.log().Info("adding 3-point lighting", "collection", c.Name)
	lights := make([]*Object, 0, len(threePointRig))
	for _, l := range threePointRig {
		o := NewLightObject(l.name, NewPointLight(l.energy))
		o.Location = l.location
		c.Link(o)
		lights = append(lights, o)
	}
	return lights
}

// EnsureUniqueInCollection unlinks each object from every collection but c.
func (g *Generator) EnsureUniqueInCollection(c *Collection, objects []*Object) {
	for _, o := range objects {
		for _, other := range o.UsersCollection() {
			if other != c {
				other.Unlink(o)
			}
		}
	}
	g.log().Info("ensured objects are unique to collection", "collection", c.Name, "objects", len(objects))
}
