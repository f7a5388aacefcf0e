package iconbake

// SolidColorShader is a simple shader that renders everything in one color.
// With a non-zero Thickness vertices are pushed out along their normals,
// which drawn with front faces culled leaves a silhouette outline.
type SolidColorShader struct {
	ShaderTransform
	Color     Color
	Thickness float64
	// UseObjectColor takes the color from each object instead of Color.
	UseObjectColor bool
}

func NewSolidColorShader(viewProjection Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{ShaderTransform: NewShaderTransform(viewProjection), Color: color}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	v.Position = s.model.MulPosition(v.Position)
	v.Normal = s.normal.MulDirection(v.Normal)
	v.Position = v.Position.Add(v.Normal.MulScalar(s.Thickness))
	v.Output = s.ViewProjection.MulPositionW(v.Position)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	if s.UseObjectColor {
		return surfaceColor(v, fromObject)
	}
	return s.Color
}
