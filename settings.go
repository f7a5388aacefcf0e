package iconbake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
)

// FrontPlane names the pair of world axes assumed to face the camera when
// fitting an object.
type FrontPlane string

const (
	PlaneXY FrontPlane = "XY"
	PlaneYZ FrontPlane = "YZ"
	PlaneZX FrontPlane = "ZX"
)

type Shading string

const (
	ShadingPhong Shading = "phong"
	ShadingToon  Shading = "toon"
	ShadingSolid Shading = "solid"
)

// DefaultResolutions are the icon sizes rendered for every object, largest
// first.
var DefaultResolutions = []int{1024, 512, 256, 128, 64}

// RenderSettings configures how icons are produced. Zero values in a
// scene file's [render] table keep the defaults.
type RenderSettings struct {
	ResolutionX     int    `toml:"resolution_x,omitempty" yaml:"resolution_x,omitempty"`
	ResolutionY     int    `toml:"resolution_y,omitempty" yaml:"resolution_y,omitempty"`
	FileFormat      string `toml:"file_format,omitempty" yaml:"file_format,omitempty"`
	ColorMode       string `toml:"color_mode,omitempty" yaml:"color_mode,omitempty"`
	FilmTransparent bool   `toml:"film_transparent,omitempty" yaml:"film_transparent,omitempty"`
	WorldColor      string `toml:"world_color,omitempty" yaml:"world_color,omitempty"`

	Resolutions []int      `toml:"resolutions,omitempty" yaml:"resolutions,omitempty"`
	TargetSize  float64    `toml:"target_size,omitempty" yaml:"target_size,omitempty"`
	FrontPlane  FrontPlane `toml:"front_plane,omitempty" yaml:"front_plane,omitempty"`
	IconsDir    string     `toml:"icons_dir,omitempty" yaml:"icons_dir,omitempty"`

	Shading          Shading `toml:"shading,omitempty" yaml:"shading,omitempty"`
	Ambient          string  `toml:"ambient,omitempty" yaml:"ambient,omitempty"`
	SpecularPower    float64 `toml:"specular_power,omitempty" yaml:"specular_power,omitempty"`
	Outline          bool    `toml:"outline,omitempty" yaml:"outline,omitempty"`
	OutlineColor     string  `toml:"outline_color,omitempty" yaml:"outline_color,omitempty"`
	OutlineThickness float64 `toml:"outline_thickness,omitempty" yaml:"outline_thickness,omitempty"`
	Wireframe        bool    `toml:"wireframe,omitempty" yaml:"wireframe,omitempty"`

	// Supersample renders at this multiple of the resolution and scales
	// down.
	Supersample int `toml:"supersample,omitempty" yaml:"supersample,omitempty"`
	// SharpenBelow sharpens icons whose resolution is at or below it.
	SharpenBelow int `toml:"sharpen_below,omitempty" yaml:"sharpen_below,omitempty"`
	// SimplifyBelow decimates untextured meshes to SimplifyFactor of their
	// triangles for resolutions at or below it.
	SimplifyBelow  int     `toml:"simplify_below,omitempty" yaml:"simplify_below,omitempty"`
	SimplifyFactor float64 `toml:"simplify_factor,omitempty" yaml:"simplify_factor,omitempty"`
}

func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		ResolutionX:      1024,
		ResolutionY:      1024,
		FileFormat:       "PNG",
		ColorMode:        "RGBA",
		FilmTransparent:  true,
		WorldColor:       "#404040",
		Resolutions:      append([]int(nil), DefaultResolutions...),
		TargetSize:       2,
		FrontPlane:       PlaneXY,
		IconsDir:         "Icons",
		Shading:          ShadingPhong,
		Ambient:          "#2a2a2a",
		OutlineColor:     "#000000",
		OutlineThickness: 0.02,
		Supersample:      2,
		SimplifyFactor:   0.5,
	}
}

// SetResolution prepares the settings for a square render.
func (s *RenderSettings) SetResolution(resolution int) {
	s.ResolutionX = resolution
	s.ResolutionY = resolution
	s.FileFormat = "PNG"
	s.ColorMode = "RGBA"
	s.FilmTransparent = true
}

// Merge copies every non-zero field of override onto s. A false boolean
// in override cannot switch an option off. A non-empty Resolutions list
// replaces the current one.
func (s *RenderSettings) Merge(override RenderSettings) error {
	resolutions := s.Resolutions
	if len(override.Resolutions) > 0 {
		resolutions = append([]int(nil), override.Resolutions...)
	}
	// copier merges slices element by element, so the list is set apart.
	override.Resolutions = nil
	if err := copier.CopyWithOption(s, &override, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return err
	}
	s.Resolutions = resolutions
	return nil
}

func (s RenderSettings) Validate() error {
	var errs []error
	if s.ResolutionX <= 0 || s.ResolutionY <= 0 {
		errs = append(errs, fmt.Errorf("resolution %dx%d must be positive", s.ResolutionX, s.ResolutionY))
	}
	if !strings.EqualFold(s.FileFormat, "PNG") {
		errs = append(errs, fmt.Errorf("file format %q not supported", s.FileFormat))
	}
	if s.ColorMode != "RGBA" && s.ColorMode != "RGB" {
		errs = append(errs, fmt.Errorf("color mode %q not supported", s.ColorMode))
	}
	if len(s.Resolutions) == 0 {
		errs = append(errs, errors.New("no resolutions"))
	}
	for _, r := range s.Resolutions {
		if r <= 0 {
			errs = append(errs, fmt.Errorf("resolution %d must be positive", r))
		}
	}
	if s.TargetSize <= 0 {
		errs = append(errs, fmt.Errorf("target size %g must be positive", s.TargetSize))
	}
	switch s.FrontPlane {
	case PlaneXY, PlaneYZ, PlaneZX:
	default:
		errs = append(errs, fmt.Errorf("front plane %q must be XY, YZ or ZX", s.FrontPlane))
	}
	switch s.Shading {
	case ShadingPhong, ShadingToon, ShadingSolid:
	default:
		errs = append(errs, fmt.Errorf("shading %q must be phong, toon or solid", s.Shading))
	}
	if s.Supersample < 1 {
		errs = append(errs, fmt.Errorf("supersample %d must be at least 1", s.Supersample))
	}
	if s.SimplifyFactor <= 0 || s.SimplifyFactor > 1 {
		errs = append(errs, fmt.Errorf("simplify factor %g must be in (0, 1]", s.SimplifyFactor))
	}
	if err := ValidateName(s.IconsDir); err != nil {
		errs = append(errs, fmt.Errorf("icons dir: %w", err))
	}
	for _, c := range []string{s.WorldColor, s.Ambient, s.OutlineColor} {
		if _, err := ParseHexColor(c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("iconbake: render settings: %w", errors.Join(errs...))
	}
	return nil
}
