package raycaster

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
)

// Save writes the canvas in the format named by the path extension:
// .ppm (default), .png, .gif or .raw.
func Save(c *Canvas, path string, pngScale int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return SavePNG(c, path, pngScale)
	case ".gif":
		return SaveAnimatedGIF([]*Canvas{c}, path, GIFDelay)
	case ".raw":
		return c.SaveRawRGB64(path)
	}
	return c.SavePPM(path)
}

// Overrides are command line values that win over the config file.
// Zero fields leave the config value alone.
type Overrides struct {
	Output   string
	PNGScale int
	Workers  int
}

func (o Overrides) apply(cfg *Config) {
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if o.PNGScale > 0 {
		cfg.PNGScale = o.PNGScale
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
}

// Run renders the scene described by the config at cfgPath.
func Run(ctx context.Context, cfgPath string, o Overrides) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	o.apply(cfg)
	if data, err := cfg.YAML(); err == nil {
		DebugLog("Effective config:\n%s", data)
	}

	start := time.Now()
	canvas, stats, err := Render(ctx, cfg)
	if err != nil {
		return err
	}
	glog.Infof("Rendered %dx%d in %s: %v", cfg.Width, cfg.Height, time.Since(start), stats)

	if err := Save(canvas, cfg.Output, cfg.PNGScale); err != nil {
		return fmt.Errorf("while saving %s: %w", cfg.Output, err)
	}
	glog.Infof("Saved %s", cfg.Output)
	return nil
}

// RunClock draws the 12 hour marks, one GIF frame per mark, or a single
// still image for any other extension.
func RunClock(out string, size int, pngScale int) error {
	if size <= 0 {
		size = CanvasSize
	}
	if out == "" {
		out = GIFOut
	}
	radius := float64(size) * 2 / 5
	frames, err := ClockFrames(size, radius, Colour{1, 0, 0})
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(out), ".gif") {
		err = SaveAnimatedGIF(frames, out, GIFDelay)
	} else {
		err = Save(frames[len(frames)-1], out, pngScale)
	}
	if err != nil {
		return fmt.Errorf("while saving %s: %w", out, err)
	}
	glog.Infof("Saved clock %s", out)
	return nil
}

// RunProjectile plots a projectile launched at 45° onto a 1000×500 canvas.
func RunProjectile(out string, speed float64, pngScale int) error {
	if out == "" {
		out = "projectile.ppm"
	}
	if speed <= 0 {
		speed = 1.3
	}
	c, err := NewCanvas(1000, 500)
	if err != nil {
		return err
	}
	p := Projectile{Position: Point(0, 1, 0), Velocity: Vector(1, 1, 0).Normalize().Scale(speed)}
	env := Environment{Gravity: Vector(0, -0.001, 0), Wind: Vector(-0.0005, 0, 0)}
	ticks, plotted := PlotTrajectory(c, p, env, Colour{1, 0, 0}, math.MaxInt32)
	glog.Infof("Projectile: %d ticks, %d plotted", ticks, plotted)
	if err := Save(c, out, pngScale); err != nil {
		return fmt.Errorf("while saving %s: %w", out, err)
	}
	glog.Infof("Saved projectile %s", out)
	return nil
}
