package renderer

import "time"

// RowStat records how long one worker job (a contiguous row range) took to
// render.
type RowStat struct {
	Y0, Y1     int
	RenderTime time.Duration
}

// FrameStats summarizes a completed render, mirroring the shape of the
// teacher's per-tracer frame stats but keyed on row ranges rather than
// devices.
type FrameStats struct {
	Rows []RowStat

	// Total wall-clock render time for the whole frame.
	RenderTime time.Duration
}
