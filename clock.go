// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BitSignal is the read-only view of a 1 bit signal.
//
type BitSignal interface {
	Value() bool
}

// A ClockSignal identifies a clock domain. Clocks are their own clock signal;
// ClockConnector adds one level of indirection.
//
// Clock returns nil if the signal does not (yet) resolve to a clock.
//
type ClockSignal interface {
	Clock() *Clock
}

// A ClockedItem is an item whose state only changes on edges of its clock.
//
// ComputeNextState may read any signal, including the current state of other
// items, but must not change any observable state. UpdateState commits the
// state computed by ComputeNextState; it must not read other items' state nor
// write it, since other items may or may not have been updated already.
//
// The clock signal of an item must not change once the simulation is
// prepared.
//
type ClockedItem interface {
	Item
	ClockSignal() ClockSignal
	ComputeNextState()
	UpdateState()
}

// Phase is the phase of a clock edge.
//
type Phase int

// Clock edge phases.
//
const (
	PhaseIdle Phase = iota
	PhaseCompute
	PhaseUpdate
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCompute:
		return "compute"
	case PhaseUpdate:
		return "update"
	}
	return "invalid"
}

// A Clock is a clock domain: the set of clocked items that update together on
// the same clock edge.
//
// Edges are not detected from the input signal. They happen when Edge is
// called, usually by a ClockGenerator or a ClockStepper.
//
type Clock struct {
	ItemBase
	input    BitSignal
	members  []ClockedItem
	resolved bool
	phase    Phase
	edges    uint64
}

// NewClock returns a new clock domain for the given clock net. There can be
// only one clock per net: NewClock returns ErrDuplicateClock if input already
// has one. Since nets are compared with ==, the dynamic type of input must be
// comparable.
//
func NewClock(d *Design, input BitSignal) (*Clock, error) {
	if input == nil {
		return nil, errors.New("nil clock input")
	}
	if err := SameDesign(d, input); err != nil {
		return nil, err
	}
	if !reflect.TypeOf(input).Comparable() {
		return nil, errors.Errorf("clock input of type %T is not comparable", input)
	}
	if other, ok := d.clocks[input]; ok {
		return nil, errors.Wrapf(ErrDuplicateClock, "net used by %s", itemName(other))
	}
	c := &Clock{input: input}
	if err := d.Add(c); err != nil {
		return nil, err
	}
	d.clocks[input] = c
	return c, nil
}

// Clock implements ClockSignal.
//
func (c *Clock) Clock() *Clock { return c }

// Input returns the clock net.
//
func (c *Clock) Input() BitSignal { return c.input }

// Phase returns the phase of the edge being processed, or PhaseIdle between
// edges.
//
func (c *Clock) Phase() Phase { return c.phase }

// Edges returns the number of completed edges.
//
func (c *Clock) Edges() uint64 { return c.edges }

// Members returns the clocked items of this domain in registration order.
//
func (c *Clock) Members() ([]ClockedItem, error) {
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return append([]ClockedItem(nil), c.members...), nil
}

// resolve builds the member list on first use. The design must be prepared,
// after which the item population cannot change.
func (c *Clock) resolve() error {
	if c.resolved {
		return nil
	}
	d := c.Design()
	if !d.prepared {
		return errors.Wrapf(ErrNotPrepared, "clock %s", itemName(c))
	}
	var members []ClockedItem
	for _, it := range d.items {
		ci, ok := it.(ClockedItem)
		if !ok {
			continue
		}
		var clk *Clock
		if cs := ci.ClockSignal(); cs != nil {
			clk = cs.Clock()
		}
		if clk == nil {
			return errors.Wrapf(ErrUnresolvedClock, "%s", itemName(it))
		}
		if clk == c {
			members = append(members, ci)
		}
	}
	c.members, c.resolved = members, true
	d.log.WithFields(logrus.Fields{"clock": itemName(c), "members": len(members)}).Debug("clock domain resolved")
	return nil
}

// Edge simulates one clock edge: ComputeNextState is called on every member,
// then UpdateState is called on every member. Members are processed in
// registration order, but items must not depend on it.
//
func (c *Clock) Edge() error {
	if c.phase != PhaseIdle {
		return errors.Wrapf(ErrEdgeInProgress, "clock %s", itemName(c))
	}
	if err := c.resolve(); err != nil {
		return err
	}
	defer func() { c.phase = PhaseIdle }()

	c.phase = PhaseCompute
	for _, it := range c.members {
		it.ComputeNextState()
	}
	c.phase = PhaseUpdate
	for _, it := range c.members {
		it.UpdateState()
	}
	c.edges++
	return nil
}

// A ClockConnector is a ClockSignal placeholder that is connected to the
// actual clock signal later, typically when a sub-circuit is built before the
// clock it will run on. It must be connected before the simulation is
// prepared.
//
type ClockConnector struct {
	ItemBase
	connected ClockSignal
}

// NewClockConnector returns a new, unconnected, clock connector.
//
func NewClockConnector(d *Design) (*ClockConnector, error) {
	c := new(ClockConnector)
	return c, d.Add(c)
}

// Connect connects c to s.
//
func (c *ClockConnector) Connect(s ClockSignal) error {
	if err := SameDesign(c.Design(), s); err != nil {
		return err
	}
	for next := s; next != nil; {
		cc, ok := next.(*ClockConnector)
		if !ok {
			break
		}
		if cc == c {
			return errors.New("clock connector loop")
		}
		next = cc.connected
	}
	c.connected = s
	return nil
}

// Connected returns the signal c is connected to.
//
func (c *ClockConnector) Connected() ClockSignal { return c.connected }

// Clock implements ClockSignal.
//
func (c *ClockConnector) Clock() *Clock {
	if c.connected == nil {
		return nil
	}
	return c.connected.Clock()
}

// Validate implements Validator.
//
func (c *ClockConnector) Validate() error {
	if c.connected == nil {
		return errors.Wrap(ErrUnresolvedClock, "clock connector not connected")
	}
	return nil
}
