package raycaster

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// castPixelRay intersects one world-space ray with every sphere and returns
// the colour of the nearest hit.
func castPixelRay(r Ray, objects []*Sphere, colors map[*Sphere]Colour) (Colour, bool) {
	var xs Intersections
	for _, o := range objects {
		xs = xs.Merge(r.Intersect(o))
	}
	hit, ok := xs.Hit()
	if !ok {
		return Colour{}, false
	}
	return colors[hit.Object], true
}

// Render casts one ray per pixel from the camera origin through a wall at
// cfg.Camera.WallZ. Rows are rendered in parallel; each worker owns whole rows.
func Render(ctx context.Context, cfg *Config) (*Canvas, RenderStats, error) {
	if err := cfg.SetDefaults(); err != nil {
		return nil, RenderStats{}, err
	}
	objects := make([]*Sphere, 0, len(cfg.Spheres))
	colors := make(map[*Sphere]Colour, len(cfg.Spheres))
	for i, sc := range cfg.Spheres {
		s, err := sc.Build()
		if err != nil {
			return nil, RenderStats{}, fmt.Errorf("while building sphere #%d: %w", i, err)
		}
		objects = append(objects, s)
		colors[s] = *sc.Color
	}

	canvas, err := NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return nil, RenderStats{}, err
	}
	canvas.Fill(cfg.Background)

	origin := cfg.Camera.Origin.Point()
	pixelSize := cfg.Camera.WallSize / float64(cfg.Width)
	halfW := cfg.Camera.WallSize / 2
	halfH := pixelSize * float64(cfg.Height) / 2

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
		DebugLogOnce("Workers not set, using %d CPUs", workers)
	}
	DebugLog("Render %dx%d, pixel size %f, %d workers", cfg.Width, cfg.Height, pixelSize, workers)

	counter := &rayCounter{}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := 0; y < cfg.Height; y++ {
		y := y
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			worldY := halfH - pixelSize*float64(y)
			var hits, misses int64
			for x := 0; x < cfg.Width; x++ {
				worldX := -halfW + pixelSize*float64(x)
				target := Point(worldX, worldY, cfg.Camera.WallZ)
				r := NewRay(origin, target.Sub(origin).Normalize())
				col, ok := castPixelRay(r, objects, colors)
				if !ok {
					misses++
					continue
				}
				hits++
				if err := canvas.Write(x, y, col); err != nil {
					return fmt.Errorf("while writing pixel (%d,%d): %w", x, y, err)
				}
			}
			counter.add(Hit, hits)
			counter.add(Miss, misses)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while rendering: %w", err)
	}
	stats := counter.snapshot()
	DebugLog("Render done: %v", stats)
	return canvas, stats, nil
}
