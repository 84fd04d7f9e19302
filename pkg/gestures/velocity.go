package gestures

import (
	"time"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

const (
	// velocityWindow bounds how far back samples contribute to an estimate.
	velocityWindow = 100 * time.Millisecond
	maxSamples     = 20
)

type velocitySample struct {
	position graphics.Offset
	time     time.Time
}

// VelocityTracker estimates pointer velocity from recent position samples.
//
// The estimate is the displacement across the samples received within the
// last 100ms divided by the time they span. Older samples are dropped so a
// pause before release reads as a slow release.
type VelocityTracker struct {
	samples []velocitySample
}

// AddPosition records a sample.
func (v *VelocityTracker) AddPosition(t time.Time, position graphics.Offset) {
	if len(v.samples) == maxSamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:maxSamples-1]
	}
	v.samples = append(v.samples, velocitySample{position: position, time: t})
}

// Velocity returns the estimated velocity in pixels per second.
func (v *VelocityTracker) Velocity() graphics.Offset {
	if len(v.samples) < 2 {
		return graphics.Offset{}
	}
	newest := v.samples[len(v.samples)-1]
	oldest := newest
	for i := len(v.samples) - 2; i >= 0; i-- {
		s := v.samples[i]
		if newest.time.Sub(s.time) > velocityWindow {
			break
		}
		oldest = s
	}
	dt := newest.time.Sub(oldest.time).Seconds()
	if dt <= 0 {
		return graphics.Offset{}
	}
	return newest.position.Sub(oldest.position).Scale(1 / dt)
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
