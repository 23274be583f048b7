package raycaster

import "fmt"

var (
	Workers  = 0 // row workers for Render; <= 0 means runtime.NumCPU()
	PNGScale = 1 // default nearest-neighbour upscale for PNG output when the config sets none
	// Compile time checks for the String() renderings
	_ fmt.Stringer = Tuple{}
	_ fmt.Stringer = Colour{}
	_ fmt.Stringer = Matrix{}
)
