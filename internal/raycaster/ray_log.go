package raycaster

import (
	"fmt"
	"sync/atomic"
)

type Category uint8

const (
	Hit  Category = iota // ray hit a sphere in front of the camera
	Miss                 // ray missed everything (or only hit behind the origin)
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// rayCounter is shared by the render workers.
type rayCounter struct {
	counts [2]int64
}

func (rc *rayCounter) add(c Category, n int64) { atomic.AddInt64(&rc.counts[c], n) }

func (rc *rayCounter) snapshot() RenderStats {
	return RenderStats{
		Hits:   atomic.LoadInt64(&rc.counts[Hit]),
		Misses: atomic.LoadInt64(&rc.counts[Miss]),
	}
}

// RenderStats summarises one Render call.
type RenderStats struct {
	Hits   int64
	Misses int64
}

func (s RenderStats) Rays() int64 { return s.Hits + s.Misses }

func (s RenderStats) String() string {
	return fmt.Sprintf("rays=%d %v=%d %v=%d", s.Rays(), Hit, s.Hits, Miss, s.Misses)
}
