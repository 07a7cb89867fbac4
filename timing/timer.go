// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package timing provides named timing measurements and a thread-safe,
// cheaply-shareable list for aggregating them across concurrent owners.
package timing

import "time"

// Timer is a single named duration, usually measuring a code section.
// A Timer created by [Start] is running: it holds the start instant until
// [Timer.Finish] fixes the elapsed duration. A Timer created by [Fixed]
// carries a pre-measured duration and no clock.
type Timer struct {
	Name    string
	Elapsed time.Duration

	startedAt time.Time
}

// Start creates a Timer and starts its clock immediately.
func Start(name string) Timer {
	return Timer{Name: name, startedAt: time.Now()}
}

// Fixed creates a Timer from an already-measured duration, e.g. one restored
// from storage. It holds no clock, so Finish on it reports no change.
func Fixed(name string, elapsed time.Duration) Timer {
	return Timer{Name: name, Elapsed: elapsed}
}

// Finish fixes the elapsed duration of a running Timer and drops its clock.
// Reports whether Elapsed was updated: false means the Timer was already
// fixed (or never running) and nothing changed.
func (t *Timer) Finish() bool {
	if t.startedAt.IsZero() {
		return false
	}

	t.Elapsed = time.Since(t.startedAt)
	t.startedAt = time.Time{}
	return true
}

// Running reports whether the Timer still holds a clock.
func (t Timer) Running() bool {
	return !t.startedAt.IsZero()
}
