package core

import "time"

// Stats counts what happened during a screensaver run.
type Stats struct {
	Frames  uint64        // frames rendered
	Resets  int           // times the screen was cleared, including the first
	Respawn uint64        // pipes replaced after leaving the grid
	Elapsed time.Duration // wall time between start and stop
}

// FPS returns the average frame rate of the run.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}
