package raycaster

import "testing"

func TestColourArithmetic(t *testing.T) {
	a := Colour{0.9, 0.6, 0.75}
	b := Colour{0.7, 0.1, 0.25}
	if got := a.Add(b); !got.Equal(Colour{1.6, 0.7, 1.0}) {
		t.Fatalf("add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(Colour{0.2, 0.5, 0.5}) {
		t.Fatalf("sub = %v", got)
	}
	if got := (Colour{0.2, 0.3, 0.4}).Scale(2); !got.Equal(Colour{0.4, 0.6, 0.8}) {
		t.Fatalf("scale = %v", got)
	}
	if got := (Colour{1, 0.2, 0.4}).Hadamard(Colour{0.9, 1, 0.1}); !got.Equal(Colour{0.9, 0.2, 0.04}) {
		t.Fatalf("hadamard = %v", got)
	}
}

func TestColourClampedAccessors(t *testing.T) {
	c := NewColour(-0.5, 0.25, 1.5)
	if c.Red() != 0 || c.Green() != 0.25 || c.Blue() != 1 {
		t.Fatalf("clamp failed: %v %v %v", c.Red(), c.Green(), c.Blue())
	}
	// raw values are kept
	if c.R != -0.5 || c.B != 1.5 {
		t.Fatalf("raw channels changed: %+v", c)
	}
}

func TestColourTupleRoundTrip(t *testing.T) {
	c := Colour{0.1, 0.2, 0.3}
	tup := c.Tuple()
	if tup.W != 0 || !tup.IsVector() {
		t.Fatalf("colour tuple should be a vector: %+v", tup)
	}
	if ColourFromTuple(Point(0.1, 0.2, 0.3)) != c {
		t.Fatal("ColourFromTuple should drop W")
	}
}

func TestColourString(t *testing.T) {
	if got := (Colour{0, 0.6, 0.7}).String(); got != "Colour(r=0.00, g=0.60, b=0.70)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestColourBytesRoundHalfEven(t *testing.T) {
	r, g, b := Colour{0.5, -0.1, 1.1}.bytes()
	if r != 128 || g != 0 || b != 255 {
		t.Fatalf("bytes = %d %d %d", r, g, b)
	}
}
