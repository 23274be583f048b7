package raycaster

import (
	"fmt"
	"image"
)

// Canvas is a Width×Height grid of colours, (0,0) at the top left.
type Canvas struct {
	Width, Height int
	Buf           []float64 // flat: (y*Width + x)*3 + c
	Stride        int       // y*Stride + x*3 + c
}

// NewCanvas allocates an all-black canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive: %w", width, height, ErrOutOfRange)
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		Buf:    make([]float64, width*height*3),
		Stride: width * 3,
	}
	DebugLog("Created canvas %dx%d", width, height)
	return c, nil
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (c *Canvas) idx(x, y, ch int) int {
	return y*c.Stride + x*3 + ch
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Write stores col at (x,y). Coordinates outside the canvas are an error, never clamped.
func (c *Canvas) Write(x, y int, col Colour) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("canvas write at (%d,%d) on %dx%d: %w", x, y, c.Width, c.Height, ErrOutOfRange)
	}
	base := c.idx(x, y, ChR)
	c.Buf[base+ChR] = col.R
	c.Buf[base+ChG] = col.G
	c.Buf[base+ChB] = col.B
	return nil
}

// Get returns the raw colour at (x,y).
func (c *Canvas) Get(x, y int) (Colour, error) {
	if !c.inBounds(x, y) {
		return Colour{}, fmt.Errorf("canvas read at (%d,%d) on %dx%d: %w", x, y, c.Width, c.Height, ErrOutOfRange)
	}
	base := c.idx(x, y, ChR)
	return Colour{c.Buf[base+ChR], c.Buf[base+ChG], c.Buf[base+ChB]}, nil
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col Colour) {
	for base := 0; base < len(c.Buf); base += 3 {
		c.Buf[base+ChR] = col.R
		c.Buf[base+ChG] = col.G
		c.Buf[base+ChB] = col.B
	}
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	buf := make([]float64, len(c.Buf))
	copy(buf, c.Buf)
	return &Canvas{Width: c.Width, Height: c.Height, Buf: buf, Stride: c.Stride}
}

// Image converts the clamped channels to an 8-bit NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < c.Width; x++ {
			base := c.idx(x, y, ChR)
			r, g, b := Colour{c.Buf[base+ChR], c.Buf[base+ChG], c.Buf[base+ChB]}.bytes()
			p := rowOff + x*4
			img.Pix[p+0] = r
			img.Pix[p+1] = g
			img.Pix[p+2] = b
			img.Pix[p+3] = 255
		}
	}
	return img
}
