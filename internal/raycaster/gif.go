package raycaster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveAnimatedGIF writes one GIF frame per canvas.
// delay is in 100ths of a second (e.g., 50 => 2 fps).
func SaveAnimatedGIF(frames []*Canvas, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames for %s: %w", path, ErrInvalidConfig)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for k, c := range frames {
		if k%imax(1, len(frames)/10) == 0 {
			DebugLog("[GIF] frame %d/%d", k+1, len(frames))
		}
		rgba := c.Image()
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
