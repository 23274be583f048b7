package raycaster

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// SavePNG writes the canvas as an 8-bit PNG. scale > 1 upscales with
// nearest-neighbour so single pixels stay crisp.
func SavePNG(c *Canvas, path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("png scale %d must be >= 1: %w", scale, ErrInvalidConfig)
	}
	var img image.Image = c.Image()
	if scale > 1 {
		img = imaging.Resize(img, c.Width*scale, c.Height*scale, imaging.NearestNeighbor)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("while writing %s: %w", path, err)
	}
	DebugLog("Saved PNG %s (%dx%d, scale %d)", path, c.Width, c.Height, scale)
	return nil
}
