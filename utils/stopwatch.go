package utils

import (
	"time"
)

// Watch is a pausable wall-clock timer for trial measurement.
// The benchmark loop is single threaded, so no locking here.
type Watch struct {
	paused       bool
	pauseTime    time.Time
	startTime    time.Time
	adjustedTime time.Time
}

func (w *Watch) Start() {
	w.startTime = time.Now()
	w.adjustedTime = w.startTime
	if w.paused {
		panic("watch cant start because paused")
	}
}

func (w *Watch) Elapsed() time.Duration {
	mNow := time.Now()
	if w.paused {
		return mNow.Sub(w.adjustedTime) - mNow.Sub(w.pauseTime)
	}
	return mNow.Sub(w.adjustedTime)
}

func (w *Watch) AbsoluteElapsed() time.Duration {
	return time.Since(w.startTime)
}

func (w *Watch) Pause() time.Duration { // returns currently elapsed time
	if w.paused {
		panic("watch already paused")
	}
	w.pauseTime = time.Now()
	w.paused = true
	return w.pauseTime.Sub(w.adjustedTime)
}

func (w *Watch) UnPause() {
	if !w.paused {
		panic("watch wasn't paused")
	}
	w.paused = false
	w.adjustedTime = w.adjustedTime.Add(time.Since(w.pauseTime))
}
