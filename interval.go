// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"context"

	"github.com/pkg/errors"
)

// An Interval runs an action at tick offset, then every period ticks, for as
// long as the simulation runs.
//
type Interval struct {
	ItemBase
	owner  Item
	period int64
	offset int64
	action Action
	fired  uint64
}

// NewInterval returns a new Interval. The period must be positive and the
// offset must not be negative.
//
func NewInterval(d *Design, period, offset int64, action Action) (*Interval, error) {
	iv := new(Interval)
	if err := iv.init(iv, period, offset, action); err != nil {
		return nil, err
	}
	return iv, d.Add(iv)
}

func (iv *Interval) init(owner Item, period, offset int64, action Action) error {
	if period <= 0 {
		return errors.Wrapf(ErrInvalidPeriod, "period %d", period)
	}
	if offset < 0 {
		return errors.Wrapf(ErrInvalidOffset, "offset %d", offset)
	}
	if action == nil {
		return ErrNilAction
	}
	iv.owner, iv.period, iv.offset, iv.action = owner, period, offset, action
	return nil
}

// Period returns the interval period in ticks.
//
func (iv *Interval) Period() int64 { return iv.period }

// Offset returns the tick of the first action.
//
func (iv *Interval) Offset() int64 { return iv.offset }

// Fired returns how many times the action completed.
//
func (iv *Interval) Fired() uint64 { return iv.fired }

// InitializeSimulation implements Initializer.
//
func (iv *Interval) InitializeSimulation() error {
	return iv.Design().Fire(iv.owner, iv.run, iv.offset)
}

func (iv *Interval) run(ctx context.Context) error {
	if err := iv.action(ctx); err != nil {
		return err
	}
	iv.fired++
	return iv.Design().Fire(iv.owner, iv.run, iv.period)
}

// A ClockGenerator triggers an edge of its clock every period ticks.
//
type ClockGenerator struct {
	Interval
	clock *Clock
}

// NewClockGenerator returns a clock generator with its first edge at tick 0.
//
func NewClockGenerator(d *Design, clk *Clock, period int64) (*ClockGenerator, error) {
	return NewClockGeneratorOffset(d, clk, period, 0)
}

// NewClockGeneratorOffset returns a clock generator with its first edge at
// tick offset. Offsets are used to stagger several clocks.
//
func NewClockGeneratorOffset(d *Design, clk *Clock, period, offset int64) (*ClockGenerator, error) {
	if clk == nil {
		return nil, errors.New("nil clock")
	}
	if err := SameDesign(d, clk); err != nil {
		return nil, err
	}
	g := &ClockGenerator{clock: clk}
	edge := func(context.Context) error { return clk.Edge() }
	if err := g.init(g, period, offset, edge); err != nil {
		return nil, err
	}
	return g, d.Add(g)
}

// Clock returns the generated clock. A ClockGenerator is therefore a valid
// ClockSignal for the items it drives.
//
func (g *ClockGenerator) Clock() *Clock { return g.clock }
