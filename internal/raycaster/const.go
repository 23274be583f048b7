package raycaster

// Channel indices for readability.
const (
	ChR             = 0
	ChG             = 1
	ChB             = 2
	EqualTol        = 1e-10 // absolute tolerance for Equal on tuples, colours and matrices
	CloseTol        = 1e-5  // default loose tolerance for IsClose
	relTol          = 1e-9  // relative tolerance applied together with the absolute one
	MaxColorValue   = 255
	PPMPixelsPerRow = 5 // pixels per PPM text line (15 numbers)
	CanvasSize      = 500
	WallZ           = 10
	WallSize        = 7
	GIFOut          = "clock.gif"
	GIFDelay        = 50 // 100ths of a second per frame
	PPMOut          = "render.ppm"
	ClockHours      = 12
)
