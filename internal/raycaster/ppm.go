package raycaster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// toByte maps a clamped channel to 0..255; halves round to even.
func toByte(v float64) uint8 {
	return uint8(math.RoundToEven(clamp01(v) * MaxColorValue))
}

// WritePPM writes the canvas as plain-text P3. Each canvas row starts a new
// line and is wrapped after PPMPixelsPerRow pixels.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.Width, c.Height, MaxColorValue); err != nil {
		return err
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if x > 0 {
				sep := byte(' ')
				if x%PPMPixelsPerRow == 0 {
					sep = '\n'
				}
				if err := bw.WriteByte(sep); err != nil {
					return err
				}
			}
			base := c.idx(x, y, ChR)
			r, g, b := Colour{c.Buf[base+ChR], c.Buf[base+ChG], c.Buf[base+ChB]}.bytes()
			if _, err := fmt.Fprintf(bw, "%d %d %d", r, g, b); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PPM returns the P3 text of the canvas.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	_ = c.WritePPM(&sb)
	return sb.String()
}

// SavePPM writes the P3 text to path, creating parent directories.
func (c *Canvas) SavePPM(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
