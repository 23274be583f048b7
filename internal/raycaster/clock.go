package raycaster

import "math"

// ClockMarks returns the 12 hour positions on a circle of the given radius
// around centre (a vector offset), starting at 12 o'clock and turning about Z.
func ClockMarks(radius float64, centre Tuple) []Tuple {
	top := Point(0, radius, 0)
	marks := make([]Tuple, 0, ClockHours)
	for hour := 0; hour < ClockHours; hour++ {
		R := RotationZ(float64(hour) * math.Pi / 6)
		marks = append(marks, R.MulTuple(top).Add(centre))
	}
	return marks
}

// DrawClock plots the hour marks centred on the canvas.
// It returns the number of marks that landed inside it.
func DrawClock(c *Canvas, radius float64, col Colour) int {
	centre := Vector(float64(c.Width)/2, float64(c.Height)/2, 0)
	n := 0
	for _, p := range ClockMarks(radius, centre) {
		if err := c.Write(int(math.Round(p.X)), int(math.Round(p.Y)), col); err == nil {
			n++
		}
	}
	return n
}

// ClockFrames returns one canvas per hour, frame k showing marks 0..k.
func ClockFrames(size int, radius float64, col Colour) ([]*Canvas, error) {
	c, err := NewCanvas(size, size)
	if err != nil {
		return nil, err
	}
	centre := Vector(float64(size)/2, float64(size)/2, 0)
	frames := make([]*Canvas, 0, ClockHours)
	for _, p := range ClockMarks(radius, centre) {
		_ = c.Write(int(math.Round(p.X)), int(math.Round(p.Y)), col)
		frames = append(frames, c.Clone())
	}
	return frames, nil
}
