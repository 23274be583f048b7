package raycaster

import "fmt"

// Colour stores raw RGB channels. Values outside [0,1] are kept so light
// contributions can be summed; the channel accessors clamp.
type Colour struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

var Black = Colour{}

func NewColour(r, g, b float64) Colour { return Colour{r, g, b} }

// ColourFromTuple reads X, Y, Z as R, G, B; W is dropped.
func ColourFromTuple(t Tuple) Colour { return Colour{t.X, t.Y, t.Z} }

// Tuple returns the colour as a W == 0 tuple.
func (c Colour) Tuple() Tuple { return Tuple{c.R, c.G, c.B, 0} }

func (c Colour) Red() float64   { return clamp01(c.R) }
func (c Colour) Green() float64 { return clamp01(c.G) }
func (c Colour) Blue() float64  { return clamp01(c.B) }

func (c Colour) Add(o Colour) Colour      { return Colour{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Colour) Sub(o Colour) Colour      { return Colour{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c Colour) Scale(s float64) Colour   { return Colour{c.R * s, c.G * s, c.B * s} }
func (c Colour) Hadamard(o Colour) Colour { return Colour{c.R * o.R, c.G * o.G, c.B * o.B} }

func (c Colour) IsClose(o Colour, absTol float64) bool {
	return c.Tuple().IsClose(o.Tuple(), absTol)
}

func (c Colour) Equal(o Colour) bool { return c.IsClose(o, EqualTol) }

func (c Colour) String() string {
	return fmt.Sprintf("Colour(r=%.2f, g=%.2f, b=%.2f)", c.R, c.G, c.B)
}

// bytes quantizes the clamped channels to 0..255, rounding half to even.
func (c Colour) bytes() (r, g, b uint8) {
	return toByte(c.Red()), toByte(c.Green()), toByte(c.Blue())
}
