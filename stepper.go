// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"context"

	"github.com/pkg/errors"
)

// constNet is a private clock net for free steppers.
type constNet struct{ v bool }

func (n *constNet) Value() bool { return n.v }

// A ClockStepper drives a clock on demand: each call to Step advances the
// clock by a given number of edges, one every period ticks, then returns.
//
// Only one driver may drive a given clock.
//
type ClockStepper struct {
	ItemBase
	clock  *Clock
	period int64
	gen    uint64 // current Step; older edge chains are dropped
}

// NewClockStepper returns a stepper for clk.
//
func NewClockStepper(d *Design, clk *Clock, period int64) (*ClockStepper, error) {
	if clk == nil {
		return nil, errors.New("nil clock")
	}
	if err := SameDesign(d, clk); err != nil {
		return nil, err
	}
	if period <= 0 {
		return nil, errors.Wrapf(ErrInvalidPeriod, "period %d", period)
	}
	s := &ClockStepper{clock: clk, period: period}
	return s, d.Add(s)
}

// NewFreeClockStepper returns a stepper together with its own clock, built
// over a private net.
//
func NewFreeClockStepper(d *Design, period int64) (*ClockStepper, error) {
	if period <= 0 {
		return nil, errors.Wrapf(ErrInvalidPeriod, "period %d", period)
	}
	clk, err := NewClock(d, new(constNet))
	if err != nil {
		return nil, err
	}
	return NewClockStepper(d, clk, period)
}

// Clock returns the stepped clock.
//
func (s *ClockStepper) Clock() *Clock { return s.clock }

// Period returns the number of ticks between two edges.
//
func (s *ClockStepper) Period() int64 { return s.period }

// Step advances the clock by n edges and runs the simulation until the last
// one is done. On return, the simulated time has advanced by n*Period() ticks.
// Other pending events due in that time run as well.
//
// If the run stops early (time limit, cancelled ctx, failed action), the
// remaining edges of that step are dropped: the next Step starts over from
// the current tick.
//
// Step must not be called from a scheduled action.
//
func (s *ClockStepper) Step(ctx context.Context, n int) error {
	d := s.Design()
	switch {
	case n < 0:
		return errors.Wrapf(ErrInvalidCount, "step %d", n)
	case n == 0:
		return nil
	case !d.Prepared():
		return ErrNotPrepared
	case d.Running():
		return ErrReentrantRun
	}
	s.gen++
	if err := s.schedule(s.gen, n); err != nil {
		return err
	}
	return d.Continue(ctx)
}

func (s *ClockStepper) schedule(gen uint64, n int) error {
	if n < 1 {
		s.Design().Stop()
		return nil
	}
	return s.Design().Fire(s, func(context.Context) error {
		if gen != s.gen {
			return nil
		}
		if err := s.clock.Edge(); err != nil {
			return err
		}
		return s.schedule(gen, n-1)
	}, s.period)
}
