package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/netisu/iconbake"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// initConfig binds flags, ICONBAKE_* environment variables and the
// optional config file into v. Flags win over the environment, which
// wins over the file.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix("ICONBAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("iconbake")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper) *slog.Logger {
	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if v.GetString("log-format") == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// addRenderFlags registers the render setting overrides. Zero values leave
// the scene's settings alone.
func addRenderFlags(fs *pflag.FlagSet) {
	fs.IntSlice("resolutions", nil, "icon sizes to render (default 1024,512,256,128,64)")
	fs.Float64("target-size", 0, "size of the largest front-plane side after fitting (default 2)")
	fs.String("front-plane", "", "axes facing the camera when fitting: XY, YZ or ZX (default XY)")
	fs.String("shading", "", "phong, toon or solid (default phong)")
	fs.Int("supersample", 0, "render at this multiple of the resolution and scale down (default 2)")
	fs.Int("sharpen-below", 0, "sharpen icons at or below this size")
	fs.Int("simplify-below", 0, "decimate meshes for icons at or below this size")
	fs.Float64("simplify-factor", 0, "fraction of triangles kept when decimating (default 0.5)")
	fs.Bool("outline", false, "draw a silhouette outline")
	fs.String("icons-dir", "", "name of the output folder beside the scene (default Icons)")
}

// intList reads a list of ints given as a flag, a config file array or a
// comma separated string from the environment. Unset yields nil.
func intList(v *viper.Viper, key string) ([]int, error) {
	var list []int
	switch raw := v.Get(key).(type) {
	case nil:
		return nil, nil
	case string:
		for _, field := range strings.Split(raw, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := cast.ToIntE(field)
			if err != nil {
				return nil, fmt.Errorf("%s: %q is not an integer", key, field)
			}
			list = append(list, n)
		}
	default:
		ints, err := cast.ToIntSliceE(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		list = ints
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}

func renderOverrides(v *viper.Viper) (iconbake.RenderSettings, error) {
	resolutions, err := intList(v, "resolutions")
	if err != nil {
		return iconbake.RenderSettings{}, err
	}
	return iconbake.RenderSettings{
		Resolutions:    resolutions,
		TargetSize:     v.GetFloat64("target-size"),
		FrontPlane:     iconbake.FrontPlane(strings.ToUpper(v.GetString("front-plane"))),
		Shading:        iconbake.Shading(strings.ToLower(v.GetString("shading"))),
		Supersample:    v.GetInt("supersample"),
		SharpenBelow:   v.GetInt("sharpen-below"),
		SimplifyBelow:  v.GetInt("simplify-below"),
		SimplifyFactor: v.GetFloat64("simplify-factor"),
		Outline:        v.GetBool("outline"),
		IconsDir:       v.GetString("icons-dir"),
	}, nil
}

// loadScene loads the scene file and applies command line overrides.
func loadScene(v *viper.Viper, path string) (*iconbake.Scene, error) {
	scene, err := iconbake.LoadScene(path)
	if err != nil {
		return nil, err
	}
	overrides, err := renderOverrides(v)
	if err != nil {
		return nil, err
	}
	if err := scene.Render.Merge(overrides); err != nil {
		return nil, err
	}
	if err := scene.Render.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}
