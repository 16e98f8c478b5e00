package ui

import (
	"testing"
	"time"
)

func TestDragTrackerThreshold(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		release int
		want    swipeDirection
	}{
		{name: "right past threshold", start: 10, release: 10 + dragThreshold, want: swipeRight},
		{name: "left past threshold", start: 40, release: 40 - dragThreshold, want: swipeLeft},
		{name: "right under threshold", start: 10, release: 10 + dragThreshold - 1, want: swipeNone},
		{name: "left under threshold", start: 40, release: 40 - dragThreshold + 1, want: swipeNone},
		{name: "no movement", start: 20, release: 20, want: swipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d dragTracker
			d.press(tt.start)
			d.move(tt.release)
			if got := d.release(tt.release); got != tt.want {
				t.Fatalf("release: got %v want %v", got, tt.want)
			}
		})
	}
}

func TestDragTrackerReleaseWithoutPress(t *testing.T) {
	var d dragTracker
	if got := d.release(100); got != swipeNone {
		t.Fatalf("release without press: got %v", got)
	}
}

func TestWheelTrackerAccumulates(t *testing.T) {
	var w wheelTracker
	now := time.Now()

	for i := 0; i < wheelThreshold-1; i++ {
		if got := w.add(1, now); got != swipeNone {
			t.Fatalf("tick %d fired early: %v", i+1, got)
		}
	}
	if got := w.add(1, now); got != swipeRight {
		t.Fatalf("threshold tick: got %v want swipeRight", got)
	}
}

func TestWheelTrackerMinimumGap(t *testing.T) {
	var w wheelTracker
	now := time.Now()

	for i := 0; i < wheelThreshold; i++ {
		w.add(1, now)
	}

	// A second burst inside the gap accumulates but never fires.
	soon := now.Add(wheelSwipeGap / 2)
	for i := 0; i < wheelThreshold; i++ {
		if got := w.add(1, soon); got != swipeNone {
			t.Fatalf("swipe fired inside the gap: %v", got)
		}
	}

	later := now.Add(wheelSwipeGap)
	for i := 0; i < wheelThreshold-1; i++ {
		w.add(1, later)
	}
	if got := w.add(1, later); got != swipeRight {
		t.Fatalf("swipe after the gap: got %v want swipeRight", got)
	}
}

func TestWheelTrackerDirectionFlipResets(t *testing.T) {
	var w wheelTracker
	now := time.Now()

	w.add(1, now)
	w.add(1, now)
	// Reversing direction throws away the rightward progress.
	if got := w.add(-1, now); got != swipeNone {
		t.Fatalf("flip tick fired: %v", got)
	}
	w.add(-1, now)
	if got := w.add(-1, now); got != swipeLeft {
		t.Fatalf("leftward threshold: got %v want swipeLeft", got)
	}
}
