// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim_test

import (
	"context"
	"testing"

	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

// item is a bare item with optional validation and initialization hooks.
type item struct {
	rtlsim.ItemBase
	validate func() error
	init     func() error
}

func newItem(t *testing.T, d *rtlsim.Design, name string) *item {
	t.Helper()
	it := &item{}
	it.SetName(name)
	if err := d.Add(it); err != nil {
		t.Fatal(err)
	}
	return it
}

func (it *item) Validate() error {
	if it.validate == nil {
		return nil
	}
	return it.validate()
}

func (it *item) InitializeSimulation() error {
	if it.init == nil {
		return nil
	}
	return it.init()
}

// probe is a clocked item that logs its phase calls.
type probe struct {
	rtlsim.ItemBase
	clk     rtlsim.ClockSignal
	log     *[]string
	compute func()
}

func newProbe(t *testing.T, d *rtlsim.Design, name string, clk rtlsim.ClockSignal, log *[]string) *probe {
	t.Helper()
	p := &probe{clk: clk, log: log}
	p.SetName(name)
	if err := d.Add(p); err != nil {
		t.Fatal(err)
	}
	return p
}

func (p *probe) ClockSignal() rtlsim.ClockSignal { return p.clk }

func (p *probe) ComputeNextState() {
	*p.log = append(*p.log, "compute "+p.Name())
	if p.compute != nil {
		p.compute()
	}
}

func (p *probe) UpdateState() {
	*p.log = append(*p.log, "update "+p.Name())
}

func simulate(t *testing.T, d *rtlsim.Design) {
	t.Helper()
	if err := d.Simulate(context.Background()); err != nil {
		trace(t, err)
		t.Fatal(err)
	}
}
