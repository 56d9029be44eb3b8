// Package config loads the application configuration from an optional
// YAML file and BEZIER3D__ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/camera"
)

// EnvPrefix prefixes environment overrides; nested keys are joined with
// "__", e.g. BEZIER3D__CAMERA__FOV=45.
const EnvPrefix = "BEZIER3D__"

// SchemaVersion is the only accepted value of schema_version.
const SchemaVersion = "v1"

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level string `koanf:"level"` // debug|info|warn|error
	JSON  bool   `koanf:"json"`
}

// CameraConfig sets the perspective projection and the eye distance.
type CameraConfig struct {
	FOV      float64 `koanf:"fov"` // vertical, degrees
	Near     float64 `koanf:"near"`
	Far      float64 `koanf:"far"`
	Distance float64 `koanf:"distance"`
}

// TransformConfig mirrors bezier3d.TransformParameters with rotations in
// degrees and the reflection axis by name.
type TransformConfig struct {
	Reflection string `koanf:"reflection"` // none|x|y|z

	ScaleX float64 `koanf:"scale_x"`
	ScaleY float64 `koanf:"scale_y"`
	ScaleZ float64 `koanf:"scale_z"`

	RotateX float64 `koanf:"rotate_x"`
	RotateY float64 `koanf:"rotate_y"`
	RotateZ float64 `koanf:"rotate_z"`

	TranslateX float64 `koanf:"translate_x"`
	TranslateY float64 `koanf:"translate_y"`
	TranslateZ float64 `koanf:"translate_z"`

	ShearXY float64 `koanf:"shear_xy"`
	ShearXZ float64 `koanf:"shear_xz"`
	ShearYX float64 `koanf:"shear_yx"`
	ShearYZ float64 `koanf:"shear_yz"`
	ShearZX float64 `koanf:"shear_zx"`
	ShearZY float64 `koanf:"shear_zy"`
}

// Config is the complete application configuration.
type Config struct {
	Samples     int    `koanf:"samples"`
	Width       int    `koanf:"width"`
	Height      int    `koanf:"height"`
	Supersample int    `koanf:"supersample"`
	Output      string `koanf:"output"`

	Log    LogConfig    `koanf:"log"`
	Camera CameraConfig `koanf:"camera"`

	// ControlPoints holds four [x, y, z] triples.
	ControlPoints [][]float64     `koanf:"control_points"`
	Transform     TransformConfig `koanf:"transform"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		Samples:     bezier3d.DefaultSampleCount,
		Width:       800,
		Height:      600,
		Supersample: 2,
		Output:      "curve.png",
		Log:         LogConfig{Level: "info"},
		Camera: CameraConfig{
			FOV:      camera.DefaultFOV,
			Near:     camera.DefaultNear,
			Far:      camera.DefaultFar,
			Distance: camera.DefaultDistance,
		},
		Transform: TransformConfig{
			Reflection: "none",
			ScaleX:     1,
			ScaleY:     1,
			ScaleZ:     1,
		},
	}
	cfg.ControlPoints = defaultControlPoints()
	return cfg
}

func defaultControlPoints() [][]float64 {
	var out [][]float64
	for _, p := range bezier3d.DefaultControlPoints() {
		out = append(out, []float64{p.X, p.Y, p.Z})
	}
	return out
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Load merges YAML at path (if present) with env-vars (prefix
// `BEZIER3D__`, delimiter `__`) over the defaults and validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	if sv := k.String("schema_version"); sv != "" && sv != SchemaVersion {
		return Config{}, fmt.Errorf("config: schema_version %q not supported (want %s)", sv, SchemaVersion)
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}

	// Unmarshal over the defaults: absent keys keep their default values.
	// Control points are replaced as a whole, not merged element-wise.
	cfg := Default()
	cfg.ControlPoints = nil
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if len(cfg.ControlPoints) == 0 {
		cfg.ControlPoints = defaultControlPoints()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// ---------------------------------------------------------------------------
// validation and conversion
// ---------------------------------------------------------------------------

// Validate reports the first invalid setting, wrapped in
// bezier3d.ErrInvalidArgument.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", bezier3d.ErrInvalidArgument, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Samples < 2:
		return invalid("samples must be at least 2, got %d", c.Samples)
	case c.Width <= 0 || c.Height <= 0:
		return invalid("image size %dx%d", c.Width, c.Height)
	case c.Supersample < 1:
		return invalid("supersample must be at least 1, got %d", c.Supersample)
	case !(c.Camera.FOV > 0 && c.Camera.FOV < 180):
		return invalid("camera.fov %v out of (0, 180)", c.Camera.FOV)
	case !(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near):
		return invalid("camera near %v / far %v", c.Camera.Near, c.Camera.Far)
	case !(c.Camera.Distance > 0):
		return invalid("camera.distance %v", c.Camera.Distance)
	}

	if _, err := c.Points(); err != nil {
		return err
	}
	if _, err := c.Parameters(); err != nil {
		return err
	}
	return nil
}

// Points converts ControlPoints.
func (c Config) Points() (bezier3d.ControlPoints, error) {
	if len(c.ControlPoints) != 4 {
		return bezier3d.ControlPoints{}, fmt.Errorf("config: %w: want 4 control points, got %d",
			bezier3d.ErrInvalidArgument, len(c.ControlPoints))
	}
	pts := make([]bezier3d.Point3, 4)
	for i, xyz := range c.ControlPoints {
		if len(xyz) != 3 {
			return bezier3d.ControlPoints{}, fmt.Errorf("config: %w: control point %d has %d coordinates",
				bezier3d.ErrInvalidArgument, i, len(xyz))
		}
		pts[i] = bezier3d.P3(xyz[0], xyz[1], xyz[2])
		if !pts[i].IsFinite() {
			return bezier3d.ControlPoints{}, fmt.Errorf("config: %w: control point %d is not finite",
				bezier3d.ErrInvalidArgument, i)
		}
	}
	return bezier3d.NewControlPoints(pts)
}

// Parameters converts Transform, turning degrees into radians.
func (c Config) Parameters() (bezier3d.TransformParameters, error) {
	t := c.Transform
	axis, err := bezier3d.ParseAxis(t.Reflection)
	if err != nil {
		return bezier3d.TransformParameters{}, fmt.Errorf("config: transform.reflection: %w", err)
	}
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	return bezier3d.TransformParameters{
		Reflection: axis,
		ScaleX:     t.ScaleX,
		ScaleY:     t.ScaleY,
		ScaleZ:     t.ScaleZ,
		RotateX:    rad(t.RotateX),
		RotateY:    rad(t.RotateY),
		RotateZ:    rad(t.RotateZ),
		TranslateX: t.TranslateX,
		TranslateY: t.TranslateY,
		TranslateZ: t.TranslateZ,
		ShearXY:    t.ShearXY,
		ShearXZ:    t.ShearXZ,
		ShearYX:    t.ShearYX,
		ShearYZ:    t.ShearYZ,
		ShearZX:    t.ShearZX,
		ShearZY:    t.ShearZY,
	}, nil
}

// NewCamera returns a camera for the configured image size and projection.
func (c Config) NewCamera() *camera.Camera {
	cam := camera.New(c.Width, c.Height)
	cam.FOV = c.Camera.FOV
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
	cam.Position = bezier3d.P3(0, 0, c.Camera.Distance)
	return cam
}
