// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package rtlsim provides a discrete-event simulation kernel for clocked digital
circuits.

A circuit model is built from items registered with a Design. The Design owns
a Scheduler: a time-ordered queue of one-shot actions, executed one after the
other on the calling goroutine. Same-tick actions run in the order they were
scheduled, so a run is fully deterministic.

Stateful items implement ClockedItem and belong to exactly one Clock. An edge
on a Clock runs in two phases: every member first computes its next state from
the current state of the circuit, then every member commits that next state.
No code runs between the two phases, so registers behave as if they were all
updated at the same instant.

Edges are never detected by watching signals. They are triggered by driver
items built on top of the scheduler:

	Interval        run an action every p ticks, starting at tick o
	ClockGenerator  an Interval that triggers a clock edge
	ClockStepper    advance one clock by exactly n edges, then return
	TimeLimit       stop the simulation at a given tick
	CruiseControl   throttle the simulation to wall-clock speed

A minimal free running circuit looks like this:

	d := rtlsim.NewDesign()
	clk, _ := rtlsim.NewClock(d, hwlib.False)
	reg, _ := hwlib.NewBitRegister(d, clk, nil)
	reg.SetInput(hwlib.Not(reg))
	rtlsim.NewClockGenerator(d, clk, 10)
	rtlsim.NewTimeLimit(d, 100)
	err := d.Simulate(context.Background())

The hwlib package provides signals, gates, registers and memories; hwtest
provides helpers to test circuits.
*/
package rtlsim
