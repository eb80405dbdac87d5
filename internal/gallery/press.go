package gallery

import "time"

// DefaultPressThreshold is how long a press must be held before it counts
// as a long-press.
const DefaultPressThreshold = 3 * time.Second

// PressDetector converts a press-down/press-up gesture into at most one
// long-press signal per session.
//
// The detector does not schedule anything itself. The host arms it with
// PressStart, schedules a callback after Threshold using its own timer
// facility, and delivers the callback through Fire with the sequence value
// PressStart returned. A release or cancel in between disarms the detector,
// and the now-stale callback is ignored when it arrives. Bumping the
// sequence on every arm also guarantees two live timers can never target
// the same session.
type PressDetector struct {
	threshold time.Duration
	armed     bool
	seq       int
}

// NewPressDetector creates a detector with the given hold threshold.
// A zero or negative threshold falls back to DefaultPressThreshold.
func NewPressDetector(threshold time.Duration) *PressDetector {
	if threshold <= 0 {
		threshold = DefaultPressThreshold
	}
	return &PressDetector{threshold: threshold}
}

// Threshold returns the hold duration required for a long-press.
func (d *PressDetector) Threshold() time.Duration {
	return d.threshold
}

// PressStart begins a press session and returns the sequence value the
// host must pass back to Fire. Starting while a session is already armed
// replaces it: the prior session's pending fire becomes stale.
func (d *PressDetector) PressStart() int {
	d.seq++
	d.armed = true
	return d.seq
}

// PressEnd ends the press session before the threshold elapsed.
// No-op if nothing is armed or the session already fired.
func (d *PressDetector) PressEnd() {
	d.armed = false
}

// PressCancel cancels the press session. Same effect as PressEnd.
func (d *PressDetector) PressCancel() {
	d.armed = false
}

// Fire delivers the scheduled threshold callback for the session identified
// by seq. It returns true exactly once per session: when the session is
// still armed and seq is current. Stale or already-consumed callbacks
// return false.
func (d *PressDetector) Fire(seq int) bool {
	if !d.armed || seq != d.seq {
		return false
	}
	d.armed = false
	return true
}
