package iconbake

import (
	"math"
)

// Shader shader interface
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// ObjectShader is a Shader that is told each object's world transform
// before the object's mesh is drawn.
type ObjectShader interface {
	Shader
	SetModel(model Matrix)
}

// ShaderTransform moves vertices into world space and then clip space.
// Vertex positions and normals leave the vertex stage in world space so
// fragments can be lit by world-space lights.
type ShaderTransform struct {
	ViewProjection Matrix
	model          Matrix
	normal         Matrix
}

func NewShaderTransform(viewProjection Matrix) ShaderTransform {
	return ShaderTransform{ViewProjection: viewProjection, model: Identity(), normal: Identity()}
}

func (t *ShaderTransform) SetModel(model Matrix) {
	t.model = model
	t.normal = model.NormalMatrix()
}

func (t *ShaderTransform) Vertex(v Vertex) Vertex {
	v.Position = t.model.MulPosition(v.Position)
	v.Normal = t.normal.MulDirection(v.Normal)
	v.Output = t.ViewProjection.MulPositionW(v.Position)
	return v
}

// surfaceColor is the object's base color, optionally textured.
func surfaceColor(v Vertex, o *Object) Color {
	if o.UseVertexColor {
		return v.Color
	}
	color := o.Color
	if o.Texture != nil {
		sample := o.Texture.Sample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	return color
}

// diffuseLight sums the Lambert term of every rig light at p.
func diffuseLight(lights []RigLight, p, n Vector) Color {
	var light Color
	for _, l := range lights {
		dir, radiance := l.Incident(p)
		diffuse := math.Max(n.Dot(dir), 0)
		if diffuse > 0 {
			light = light.Add(radiance.MulScalar(diffuse))
		}
	}
	return light
}

// PhongShader lights surfaces with the rig's lights plus an ambient term,
// with an optional specular highlight.
type PhongShader struct {
	ShaderTransform
	CameraPosition Vector
	Lights         []RigLight
	AmbientColor   Color
	SpecularColor  Color
	SpecularPower  float64
}

func NewPhongShader(viewProjection Matrix, cameraPosition Vector, lights []RigLight, ambient Color) *PhongShader {
	return &PhongShader{
		ShaderTransform: NewShaderTransform(viewProjection),
		CameraPosition:  cameraPosition,
		Lights:          lights,
		AmbientColor:    ambient,
		SpecularColor:   White,
	}
}

func (shader *PhongShader) Fragment(v Vertex, fromObject *Object) Color {
	color := surfaceColor(v, fromObject)
	if fromObject.UseVertexColor {
		return color
	}
	light := shader.AmbientColor.Add(diffuseLight(shader.Lights, v.Position, v.Normal))
	if shader.SpecularPower > 0 {
		camera := shader.CameraPosition.Sub(v.Position).Normalize()
		for _, l := range shader.Lights {
			dir, radiance := l.Incident(v.Position)
			if v.Normal.Dot(dir) <= 0 {
				continue
			}
			reflected := dir.Negate().Reflect(v.Normal)
			specular := math.Max(camera.Dot(reflected), 0)
			if specular > 0 {
				specular = math.Pow(specular, shader.SpecularPower)
				light = light.Add(shader.SpecularColor.Mul(radiance).MulScalar(specular))
			}
		}
	}
	return color.Mul(light).Min(White).Alpha(color.A)
}
