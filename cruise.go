// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"context"
	"time"

	"github.com/db47h/rtlsim/wallclock"
	"github.com/pkg/errors"
)

// A CruiseOption configures a CruiseControl.
//
type CruiseOption func(*CruiseControl)

// WithWallClock sets the wall clock used by a CruiseControl. The default is
// wallclock.Real{}.
//
func WithWallClock(c wallclock.Clock) CruiseOption {
	return func(cc *CruiseControl) {
		if c != nil {
			cc.clock = c
		}
	}
}

// A CruiseControl slows a simulation down to observable speed: every block of
// ticks simulated ticks takes at least period of wall time. A block that took
// longer is not compensated for in later blocks.
//
// The CruiseControl keeps scheduling events for as long as the simulation
// runs, so it should be paired with a TimeLimit or another way to stop.
//
type CruiseControl struct {
	ItemBase
	ticks  int64
	period time.Duration
	clock  wallclock.Clock
	last   time.Time
}

// NewCruiseControl returns a new CruiseControl.
//
func NewCruiseControl(d *Design, ticks int64, period time.Duration, opts ...CruiseOption) (*CruiseControl, error) {
	if ticks <= 0 {
		return nil, errors.Wrapf(ErrInvalidPeriod, "simulation period %d", ticks)
	}
	if period <= 0 {
		return nil, errors.Wrapf(ErrInvalidPeriod, "wall clock period %v", period)
	}
	c := &CruiseControl{ticks: ticks, period: period, clock: wallclock.Real{}}
	for _, o := range opts {
		o(c)
	}
	return c, d.Add(c)
}

// InitializeSimulation implements Initializer.
//
func (c *CruiseControl) InitializeSimulation() error {
	return c.Design().Fire(c, c.start, 0)
}

func (c *CruiseControl) start(ctx context.Context) error {
	c.last = c.clock.Now()
	return c.Design().Fire(c, c.pace, c.ticks)
}

func (c *CruiseControl) pace(ctx context.Context) error {
	elapsed := c.clock.Now().Sub(c.last)
	if rest := c.period - elapsed; rest > 0 {
		if err := c.clock.Sleep(ctx, rest); err != nil {
			return errors.Wrap(err, "cruise control sleep interrupted")
		}
	}
	c.last = c.clock.Now()
	return c.Design().Fire(c, c.pace, c.ticks)
}
