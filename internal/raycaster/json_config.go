package raycaster

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	yaml3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

// Vec3Cfg is an x,y,z triple in config files.
type Vec3Cfg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3Cfg) Point() Tuple  { return Point(v.X, v.Y, v.Z) }
func (v Vec3Cfg) Vector() Tuple { return Vector(v.X, v.Y, v.Z) }

type CameraCfg struct {
	Origin   *Vec3Cfg `json:"origin,omitempty"` // defaults to (0,0,-5)
	WallZ    float64  `json:"wallZ,omitempty"`
	WallSize float64  `json:"wallSize,omitempty"`
}

// TransformCfg is one step of a sphere transform. Angles are in degrees
// (friendlier than radians).
type TransformCfg struct {
	Type string  `json:"type"` // translate, scale, rotateX, rotateY, rotateZ, shear
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	Z    float64 `json:"z,omitempty"`
	Deg  float64 `json:"deg,omitempty"`
	XY   float64 `json:"xy,omitempty"`
	XZ   float64 `json:"xz,omitempty"`
	YX   float64 `json:"yx,omitempty"`
	YZ   float64 `json:"yz,omitempty"`
	ZX   float64 `json:"zx,omitempty"`
	ZY   float64 `json:"zy,omitempty"`
}

type SphereCfg struct {
	// Applied in list order: the first entry acts on the unit sphere first.
	Transforms []TransformCfg `json:"transforms,omitempty"`
	Color      *Colour        `json:"color,omitempty"` // nil means red; black is a valid colour
}

type Config struct {
	Width      int         `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	Workers    int         `json:"workers,omitempty"`
	Output     string      `json:"output,omitempty"`
	PNGScale   int         `json:"pngScale,omitempty"`
	Background Colour      `json:"background"`
	Camera     CameraCfg   `json:"camera"`
	Spheres    []SphereCfg `json:"spheres"`
}

// Build returns the matrix for one transform step.
func (tc TransformCfg) Build() (Matrix, error) {
	const k = math.Pi / 180
	for _, v := range []float64{tc.X, tc.Y, tc.Z, tc.Deg, tc.XY, tc.XZ, tc.YX, tc.YZ, tc.ZX, tc.ZY} {
		if !isFinite(v) {
			return Matrix{}, fmt.Errorf("non-finite value in %+v: %w", tc, ErrInvalidConfig)
		}
	}
	switch strings.ToLower(tc.Type) {
	case "translate", "translation":
		return Translation(tc.X, tc.Y, tc.Z), nil
	case "scale", "scaling":
		if tc.X == 0 || tc.Y == 0 || tc.Z == 0 {
			return Matrix{}, fmt.Errorf("scale must be non-zero on all axes, got %+v: %w", tc, ErrInvalidConfig)
		}
		return Scaling(tc.X, tc.Y, tc.Z), nil
	case "rotatex":
		return RotationX(tc.Deg * k), nil
	case "rotatey":
		return RotationY(tc.Deg * k), nil
	case "rotatez":
		return RotationZ(tc.Deg * k), nil
	case "shear", "shearing":
		return Shearing(tc.XY, tc.XZ, tc.YX, tc.YZ, tc.ZX, tc.ZY), nil
	}
	return Matrix{}, fmt.Errorf("unknown transform type %q: %w", tc.Type, ErrInvalidConfig)
}

// Build validates and constructs the runtime sphere.
func (sc SphereCfg) Build() (*Sphere, error) {
	ts := make([]Matrix, 0, len(sc.Transforms))
	for i, tc := range sc.Transforms {
		M, err := tc.Build()
		if err != nil {
			return nil, fmt.Errorf("transform #%d: %w", i, err)
		}
		ts = append(ts, M)
	}
	s := NewSphere()
	if err := s.SetTransform(Chain(ts...)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return s, nil
}

// yamlToJSON decodes YAML 1.2 (so a bare y key stays the string "y") and
// re-encodes it as JSON for the json tags. JSON input is valid YAML 1.2.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml3.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}

// ParseConfig reads a JSON or YAML config and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	js, err := yamlToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var cfg Config
	if err := json.Unmarshal(js, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.SetDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset fields and rejects a config without spheres.
func (cfg *Config) SetDefaults() error {
	if cfg.Width <= 0 {
		cfg.Width = CanvasSize
	}
	if cfg.Height <= 0 {
		cfg.Height = cfg.Width
	}
	if cfg.Output == "" {
		cfg.Output = PPMOut
	}
	if cfg.PNGScale <= 0 {
		cfg.PNGScale = PNGScale
	}
	if cfg.Workers <= 0 {
		cfg.Workers = Workers
	}
	if cfg.Camera.Origin == nil {
		cfg.Camera.Origin = &Vec3Cfg{0, 0, -5}
	}
	if cfg.Camera.WallZ == 0 {
		cfg.Camera.WallZ = WallZ
	}
	if cfg.Camera.WallSize <= 0 {
		cfg.Camera.WallSize = WallSize
	}
	if len(cfg.Spheres) == 0 {
		return fmt.Errorf("config has no spheres: %w", ErrInvalidConfig)
	}
	for i := range cfg.Spheres {
		if cfg.Spheres[i].Color == nil {
			cfg.Spheres[i].Color = &Colour{1, 0, 0}
		}
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), spheres=%d, wall z=%f size=%f", path, cfg.Width, cfg.Height, len(cfg.Spheres), cfg.Camera.WallZ, cfg.Camera.WallSize)
	return cfg, nil
}

// YAML renders the config, defaults included, in a form ParseConfig reads back.
func (cfg *Config) YAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}
