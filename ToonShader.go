package iconbake

// ToonStep maps lighting intensities above Threshold to a flat Shade
// multiplier.
type ToonStep struct {
	Threshold float64
	Shade     float64
}

// ToonShader implements cel shading.
type ToonShader struct {
	ShaderTransform
	Lights []RigLight
	// Steps are checked in order; the first threshold below the
	// intensity wins.
	Steps []ToonStep
}

func NewToonShader(viewProjection Matrix, lights []RigLight) *ToonShader {
	return &ToonShader{
		ShaderTransform: NewShaderTransform(viewProjection),
		Lights:          lights,
		Steps: []ToonStep{
			{0.8, 1.0},  // highlight
			{0.5, 0.8},  // mid-tone
			{0.2, 0.55}, // shadow
			{0.0, 0.35}, // deep shadow
		},
	}
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	color := surfaceColor(v, fromObject)
	light := diffuseLight(s.Lights, v.Position, v.Normal)
	intensity := Clamp(0.2126*light.R+0.7152*light.G+0.0722*light.B, 0, 1)

	shade := 0.0
	if n := len(s.Steps); n > 0 {
		shade = s.Steps[n-1].Shade
	}
	for _, step := range s.Steps {
		if intensity > step.Threshold {
			shade = step.Shade
			break
		}
	}
	return color.MulScalar(shade).Min(White).Alpha(color.A)
}
