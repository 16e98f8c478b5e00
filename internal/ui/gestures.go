package ui

import "time"

// Gesture tuning. A drag must travel dragThreshold cells before
// release to count as a swipe; horizontal wheel events accumulate to
// wheelThreshold and then honor a minimum gap so one flick of a
// trackpad cannot fire a burst of swipes.
const (
	dragThreshold  = 9
	wheelThreshold = 3
	wheelSwipeGap  = 320 * time.Millisecond
)

// swipeDirection is the horizontal intent of a gesture.
type swipeDirection int

const (
	swipeNone swipeDirection = iota
	swipeLeft
	swipeRight
)

// dragTracker follows one press-move-release sequence.
type dragTracker struct {
	active bool
	startX int
	lastX  int
}

func (d *dragTracker) press(x int) {
	d.active = true
	d.startX = x
	d.lastX = x
}

func (d *dragTracker) move(x int) {
	if d.active {
		d.lastX = x
	}
}

// offset is the current horizontal travel, for render feedback.
func (d *dragTracker) offset() int {
	if !d.active {
		return 0
	}
	return d.lastX - d.startX
}

// release ends the drag and reports the swipe it amounted to, if any.
func (d *dragTracker) release(x int) swipeDirection {
	if !d.active {
		return swipeNone
	}
	d.active = false
	delta := x - d.startX
	switch {
	case delta >= dragThreshold:
		return swipeRight
	case delta <= -dragThreshold:
		return swipeLeft
	}
	return swipeNone
}

// wheelTracker accumulates horizontal wheel ticks into swipes.
// Opposite-direction ticks restart the accumulation.
type wheelTracker struct {
	accum     int
	lastSwipe time.Time
}

// add records one wheel tick (+1 right, -1 left) and reports whether
// it completed a swipe at the given instant.
func (w *wheelTracker) add(direction int, now time.Time) swipeDirection {
	if w.accum != 0 && (w.accum > 0) != (direction > 0) {
		w.accum = 0
	}
	w.accum += direction
	if w.accum < wheelThreshold && w.accum > -wheelThreshold {
		return swipeNone
	}
	if now.Sub(w.lastSwipe) < wheelSwipeGap {
		w.accum = 0
		return swipeNone
	}
	w.lastSwipe = now
	w.accum = 0
	if direction > 0 {
		return swipeRight
	}
	return swipeLeft
}
