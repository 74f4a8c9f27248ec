// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Option configures a Design.
//
type Option func(*Design)

// WithLogger sets the logger used by the design, its scheduler and its clocks.
// The default is logrus.StandardLogger().
//
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Design) {
		if l != nil {
			d.log = l
		}
	}
}

// A Design is the simulation context of one circuit: it owns the scheduler and
// the registry of all items. Items of different designs must never be wired
// together.
//
// A Design is not safe for concurrent use. Independent designs can be
// simulated concurrently.
//
type Design struct {
	sched    *Scheduler
	items    []Item
	clocks   map[BitSignal]*Clock
	prepared bool
	log      logrus.FieldLogger
}

// NewDesign returns a new, empty design.
//
func NewDesign(opts ...Option) *Design {
	d := &Design{
		clocks: make(map[BitSignal]*Clock),
		log:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(d)
	}
	d.sched = NewScheduler(d.log)
	return d
}

// Add registers an item with d. Constructors of items call Add; user code only
// needs it for custom items.
//
// Items cannot be added once the simulation is prepared, and an item can only
// be registered once.
//
func (d *Design) Add(it Item) error {
	b := it.base()
	switch {
	case b.design == d:
		return errors.Errorf("%s already registered", itemName(it))
	case b.design != nil:
		return errors.Wrapf(ErrForeignItem, "%s", itemName(it))
	case d.prepared:
		return errors.Wrapf(ErrAlreadyPrepared, "cannot add %s", itemName(it))
	}
	b.design = d
	d.items = append(d.items, it)
	return nil
}

// Items returns all registered items in registration order.
//
func (d *Design) Items() []Item {
	return append([]Item(nil), d.items...)
}

// FindItems returns the items whose name contains substr.
//
func (d *Design) FindItems(substr string) []Item {
	var r []Item
	for _, it := range d.items {
		if n := it.Name(); n != "" && strings.Contains(n, substr) {
			r = append(r, it)
		}
	}
	return r
}

// Logger returns the design's logger.
//
func (d *Design) Logger() logrus.FieldLogger { return d.log }

// Prepared returns true once Prepare has succeeded.
//
func (d *Design) Prepared() bool { return d.prepared }

// Prepare validates all items then initializes them for simulation. All
// validation failures are reported together in a *ValidationError.
//
// Prepare can only be called once. Once prepared, no item can be added to the
// design.
//
func (d *Design) Prepare() error {
	if d.prepared {
		return ErrAlreadyPrepared
	}
	var verr ValidationError
	for _, it := range d.items {
		if v, ok := it.(Validator); ok {
			verr.add(errors.Wrap(v.Validate(), itemName(it)))
		}
	}
	if err := verr.errorOrNil(); err != nil {
		return err
	}

	d.prepared = true
	d.log.WithField("items", len(d.items)).Debug("preparing simulation")
	for _, it := range d.items {
		if i, ok := it.(Initializer); ok {
			if err := i.InitializeSimulation(); err != nil {
				return errors.Wrapf(err, "initialize %s", itemName(it))
			}
		}
	}
	return nil
}

// Simulate prepares the simulation and runs it until no events are left or
// the simulation is stopped.
//
func (d *Design) Simulate(ctx context.Context) error {
	if err := d.Prepare(); err != nil {
		return err
	}
	return d.Continue(ctx)
}

// Continue resumes a prepared simulation from the current tick.
//
func (d *Design) Continue(ctx context.Context) error {
	if !d.prepared {
		return ErrNotPrepared
	}
	return d.sched.Run(ctx)
}

// Stop requests the running simulation loop to return once the current action
// completes. Pending events are kept.
//
func (d *Design) Stop() { d.sched.Stop() }

// Fire schedules action to run delay ticks from now. The owner identifies the
// action in errors and may be nil.
//
func (d *Design) Fire(owner Item, action Action, delay int64) error {
	return d.sched.Fire(owner, action, delay)
}

// Now returns the current simulated tick.
//
func (d *Design) Now() int64 { return d.sched.Now() }

// Pending returns the number of scheduled events.
//
func (d *Design) Pending() int { return d.sched.Pending() }

// Running returns true while the simulation loop runs.
//
func (d *Design) Running() bool { return d.sched.Running() }
