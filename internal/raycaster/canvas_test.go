package raycaster

import (
	"errors"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	for _, sz := range [][2]int{{40, 10}, {1000, 500}} {
		c, err := NewCanvas(sz[0], sz[1])
		if err != nil {
			t.Fatal(err)
		}
		if c.Width != sz[0] || c.Height != sz[1] || len(c.Buf) != sz[0]*sz[1]*3 {
			t.Fatalf("canvas %dx%d, buf %d", c.Width, c.Height, len(c.Buf))
		}
	}
	if _, err := NewCanvas(0, 10); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("zero width: err = %v", err)
	}
	if _, err := NewCanvas(10, -1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("negative height: err = %v", err)
	}
}

func TestCanvasReadWrite(t *testing.T) {
	c, _ := NewCanvas(10, 40)
	col1 := Colour{0.5, 0.4, 0.3}
	if err := c.Write(2, 5, col1); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get(2, 5); got != col1 {
		t.Fatalf("Get(2,5) = %v", got)
	}
	for _, p := range [][2]int{{0, 0}, {9, 39}} {
		if got, _ := c.Get(p[0], p[1]); got != Black {
			t.Fatalf("Get%v = %v, want black", p, got)
		}
	}
	col2 := Colour{1, 0, 0}
	_ = c.Write(9, 39, col2)
	_ = c.Write(0, 0, col2)
	if got, _ := c.Get(0, 0); got != col2 {
		t.Fatalf("Get(0,0) = %v", got)
	}
	if got, _ := c.Get(9, 39); got != col2 {
		t.Fatalf("Get(9,39) = %v", got)
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c, _ := NewCanvas(10, 10)
	for _, p := range [][2]int{{0, 10}, {-1, 0}, {10, 0}, {0, -1}} {
		if _, err := c.Get(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Get%v err = %v", p, err)
		}
		if err := c.Write(p[0], p[1], Black); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Write%v err = %v", p, err)
		}
	}
}

func TestCanvasFillClone(t *testing.T) {
	c, _ := NewCanvas(3, 2)
	bg := Colour{0.1, 0.2, 0.3}
	c.Fill(bg)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if got, _ := c.Get(x, y); got != bg {
				t.Fatalf("(%d,%d) = %v", x, y, got)
			}
		}
	}
	d := c.Clone()
	_ = d.Write(0, 0, Black)
	if got, _ := c.Get(0, 0); got != bg {
		t.Fatal("Clone shares buffer")
	}
}

func TestCanvasImage(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	_ = c.Write(1, 0, Colour{1.5, 0.5, -1})
	img := c.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	px := img.NRGBAAt(1, 0)
	if px.R != 255 || px.G != 128 || px.B != 0 || px.A != 255 {
		t.Fatalf("pixel = %+v", px)
	}
	if px := img.NRGBAAt(0, 1); px.R != 0 || px.A != 255 {
		t.Fatalf("background pixel = %+v", px)
	}
}
