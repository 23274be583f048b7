package raycaster

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const yamlScene = `
width: 20
height: 10
workers: 2
output: out/scene.png
pngScale: 4
background: {r: 0.1, g: 0.1, b: 0.1}
camera:
  origin: {x: 0, y: 0, z: -6}
  wallZ: 12
  wallSize: 8
spheres:
  - color: {r: 0, g: 1, b: 0}
    transforms:
      - {type: scale, x: 1, y: 0.5, z: 1}
      - {type: rotateZ, deg: 36}
  - transforms:
      - {type: translate, x: 2}
`

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(yamlScene))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 || cfg.Height != 10 || cfg.Workers != 2 || cfg.PNGScale != 4 || cfg.Output != "out/scene.png" {
		t.Fatalf("scalars wrong: %+v", cfg)
	}
	if cfg.Background != (Colour{0.1, 0.1, 0.1}) {
		t.Fatalf("background = %v", cfg.Background)
	}
	if cfg.Camera.Origin.Point() != Point(0, 0, -6) || cfg.Camera.WallZ != 12 || cfg.Camera.WallSize != 8 {
		t.Fatalf("camera = %+v", cfg.Camera)
	}
	if len(cfg.Spheres) != 2 || *cfg.Spheres[0].Color != (Colour{0, 1, 0}) {
		t.Fatalf("spheres = %+v", cfg.Spheres)
	}
	// unset colour falls back to red
	if *cfg.Spheres[1].Color != (Colour{1, 0, 0}) {
		t.Fatalf("default colour = %v", *cfg.Spheres[1].Color)
	}

	s, err := cfg.Spheres[0].Build()
	if err != nil {
		t.Fatal(err)
	}
	want := RotationZ(math.Pi / 5).Mul(Scaling(1, 0.5, 1))
	if !s.Transform().IsClose(want, 1e-12) {
		t.Fatalf("transform = %v, want %v", s.Transform(), want)
	}
}

func TestParseConfigYAMLKeepsYKeys(t *testing.T) {
	data := `
camera:
  origin: {x: 1, y: 2, z: -7}
spheres:
  - transforms:
      - {type: translate, x: 1, y: 2, z: 3}
      - type: scale
        x: 1
        y: 4
        z: 1
`
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Origin.Point() != Point(1, 2, -7) {
		t.Fatalf("origin = %+v", cfg.Camera.Origin)
	}
	ts := cfg.Spheres[0].Transforms
	if ts[0].Y != 2 || ts[1].Y != 4 {
		t.Fatalf("y values = %v, %v", ts[0].Y, ts[1].Y)
	}

	out, err := cfg.YAML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseConfig(out)
	if err != nil {
		t.Fatalf("reparse %s: %v", out, err)
	}
	if back.Camera.Origin.Point() != Point(1, 2, -7) || back.Spheres[0].Transforms[0].Y != 2 {
		t.Fatalf("round trip lost y:\n%s", out)
	}
}

func TestParseConfigBlackSphere(t *testing.T) {
	cfg, err := ParseConfig([]byte("spheres:\n  - color: {r: 0, g: 0, b: 0}\n  - {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Spheres[0].Color != Black {
		t.Fatalf("black sphere = %v", *cfg.Spheres[0].Color)
	}
	if *cfg.Spheres[1].Color != (Colour{1, 0, 0}) {
		t.Fatalf("unset colour = %v", *cfg.Spheres[1].Color)
	}
}

func TestParseConfigJSONDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"spheres": [{}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != CanvasSize || cfg.Height != CanvasSize || cfg.Output != PPMOut || cfg.PNGScale != 1 {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.Camera.Origin == nil || cfg.Camera.Origin.Point() != Point(0, 0, -5) {
		t.Fatalf("origin = %+v", cfg.Camera.Origin)
	}
	if cfg.Camera.WallZ != WallZ || cfg.Camera.WallSize != WallSize {
		t.Fatalf("wall = %+v", cfg.Camera)
	}
	s, err := cfg.Spheres[0].Build()
	if err != nil || !s.Transform().Equal(Identity()) {
		t.Fatalf("empty sphere: %v %v", s, err)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"no spheres": `{"width": 10}`,
		"bad syntax": `{"spheres": [`,
		"empty":      ``,
	}
	for name, data := range cases {
		if _, err := ParseConfig([]byte(data)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v", name, err)
		}
	}
}

func TestTransformCfgBuild(t *testing.T) {
	cases := []struct {
		tc   TransformCfg
		want Matrix
	}{
		{TransformCfg{Type: "translate", X: 1, Y: 2, Z: 3}, Translation(1, 2, 3)},
		{TransformCfg{Type: "Scaling", X: 2, Y: 3, Z: 4}, Scaling(2, 3, 4)},
		{TransformCfg{Type: "rotateX", Deg: 90}, RotationX(math.Pi / 2)},
		{TransformCfg{Type: "rotatey", Deg: 45}, RotationY(math.Pi / 4)},
		{TransformCfg{Type: "ROTATEZ", Deg: 180}, RotationZ(math.Pi)},
		{TransformCfg{Type: "shear", XY: 1, ZY: 2}, Shearing(1, 0, 0, 0, 0, 2)},
	}
	for _, c := range cases {
		got, err := c.tc.Build()
		if err != nil {
			t.Fatalf("%+v: %v", c.tc, err)
		}
		if !got.IsClose(c.want, 1e-12) {
			t.Fatalf("%+v: got %v, want %v", c.tc, got, c.want)
		}
	}

	if _, err := (TransformCfg{Type: "scale", X: 0, Y: 1, Z: 1}).Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero scale: err = %v", err)
	}
	if _, err := (TransformCfg{Type: "spin"}).Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown type: err = %v", err)
	}
}

func TestSphereCfgSingular(t *testing.T) {
	sc := SphereCfg{Transforms: []TransformCfg{{Type: "shear", XY: 1, YX: 1}}}
	if _, err := sc.Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("singular shear: err = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(yamlScene), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil || cfg.Width != 20 {
		t.Fatalf("loadConfig: %+v %v", cfg, err)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestTransformCfgRejectsNonFinite(t *testing.T) {
	if _, err := (TransformCfg{Type: "translate", X: math.Inf(1)}).Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("inf translate: err = %v", err)
	}
	if _, err := (TransformCfg{Type: "rotateX", Deg: math.NaN()}).Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NaN angle: err = %v", err)
	}
}

func TestBundledSceneParses(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "..", "scenes", "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for i, sc := range cfg.Spheres {
		if _, err := sc.Build(); err != nil {
			t.Fatalf("sphere #%d: %v", i, err)
		}
	}
}
