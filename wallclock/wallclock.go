// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wallclock abstracts the real-time clock used to pace simulations.
//
// Real uses the time package. Manual is a deterministic clock for tests: its
// time only moves when advanced or slept on.
//
package wallclock

import (
	"context"
	"sync"
	"time"
)

// A Clock tells the time and sleeps.
//
type Clock interface {
	Now() time.Time
	// Sleep pauses the calling goroutine for at least d. It returns ctx.Err()
	// if ctx is done first.
	Sleep(ctx context.Context, d time.Duration) error
}

// Real is the system clock.
//
type Real struct{}

// Now returns time.Now().
//
func (Real) Now() time.Time { return time.Now() }

// Sleep implements Clock.
//
func (Real) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Manual is a Clock whose time only changes through Advance and Sleep. Sleep
// returns immediately after moving the clock forward and records the duration.
//
// Manual is safe for concurrent use.
//
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

// NewManual returns a Manual clock set to start.
//
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Clock.
//
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
//
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Sleep implements Clock.
//
func (m *Manual) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.slept = append(m.slept, d)
	m.mu.Unlock()
	return nil
}

// Slept returns the durations passed to Sleep, in call order.
//
func (m *Manual) Slept() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.slept...)
}
