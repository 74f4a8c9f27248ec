// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
	"github.com/db47h/rtlsim/hwtest"
	"github.com/pkg/errors"
)

// pair builds two registers A and B where A loads f(B) and B loads A, clocked
// every 10 ticks from tick 0, and returns the (A, B) values seen after each
// edge.
func pair(t *testing.T, f func(rtlsim.BitSignal) rtlsim.BitSignal, a0, b0 bool, edges int) [][2]bool {
	t.Helper()
	d := rtlsim.NewDesign()
	clk, err := rtlsim.NewClock(d, hl.False)
	if err != nil {
		t.Fatal(err)
	}
	a, err := hl.NewBitRegister(d, clk, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := hl.NewBitRegister(d, clk, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = a.SetInput(f(hwtest.Guard(t, clk, "B", b))); err != nil {
		t.Fatal(err)
	}
	if err = b.SetInput(hwtest.Guard(t, clk, "A", a)); err != nil {
		t.Fatal(err)
	}
	a.Init(a0)
	b.Init(b0)
	if _, err = rtlsim.NewClockGenerator(d, clk, 10); err != nil {
		t.Fatal(err)
	}
	var out [][2]bool
	// same ticks as the generator, registered after it: sees post-edge values.
	_, err = rtlsim.NewInterval(d, 10, 0, func(context.Context) error {
		out = append(out, [2]bool{a.Value(), b.Value()})
		if len(out) == edges {
			d.Stop()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	simulate(t, d)
	if n := clk.Edges(); n != uint64(edges) {
		t.Fatalf("expected %d edges, got %d", edges, n)
	}
	if now := d.Now(); now != int64(edges-1)*10 {
		t.Fatalf("expected last edge at tick %d, got %d", (edges-1)*10, now)
	}
	return out
}

func TestClock_swap(t *testing.T) {
	got := pair(t, func(s rtlsim.BitSignal) rtlsim.BitSignal { return s }, false, true, 4)
	ex := [][2]bool{{true, false}, {false, true}, {true, false}, {false, true}}
	if !reflect.DeepEqual(got, ex) {
		t.Fatalf("expected %v, got %v", ex, got)
	}
}

func TestClock_johnson(t *testing.T) {
	got := pair(t, hl.Not, false, true, 4)
	ex := [][2]bool{{false, false}, {true, false}, {true, true}, {false, true}}
	if !reflect.DeepEqual(got, ex) {
		t.Fatalf("expected %v, got %v", ex, got)
	}
}

func TestClock_phases(t *testing.T) {
	d := rtlsim.NewDesign()
	clk, err := rtlsim.NewClock(d, hl.True)
	if err != nil {
		t.Fatal(err)
	}
	other, err := rtlsim.NewClock(d, hl.False)
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	p1 := newProbe(t, d, "p1", clk, &log)
	newProbe(t, d, "x", other, &log)
	p2 := newProbe(t, d, "p2", clk, &log)
	var phase rtlsim.Phase
	var nested error
	p2.compute = func() {
		phase = clk.Phase()
		nested = clk.Edge()
	}

	if err = clk.Edge(); errors.Cause(err) != rtlsim.ErrNotPrepared {
		t.Fatalf("expected ErrNotPrepared, got %v", err)
	}
	if err = d.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err = clk.Edge(); err != nil {
		t.Fatal(err)
	}
	ex := []string{"compute p1", "compute p2", "update p1", "update p2"}
	if !reflect.DeepEqual(log, ex) {
		t.Fatalf("expected %v, got %v", ex, log)
	}
	if phase != rtlsim.PhaseCompute {
		t.Fatalf("expected phase %v, got %v", rtlsim.PhaseCompute, phase)
	}
	if errors.Cause(nested) != rtlsim.ErrEdgeInProgress {
		t.Fatalf("expected ErrEdgeInProgress, got %v", nested)
	}
	if clk.Phase() != rtlsim.PhaseIdle {
		t.Fatalf("expected idle phase after edge, got %v", clk.Phase())
	}
	ms, err := clk.Members()
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 || ms[0] != rtlsim.ClockedItem(p1) || ms[1] != rtlsim.ClockedItem(p2) {
		t.Fatalf("unexpected members %v", ms)
	}
	if other.Edges() != 0 || clk.Edges() != 1 {
		t.Fatalf("bad edge counts: clk %d, other %d", clk.Edges(), other.Edges())
	}
}

func TestNewClock_errors(t *testing.T) {
	d := rtlsim.NewDesign()
	net, err := hl.NewSettableBit(d, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = rtlsim.NewClock(d, net); err != nil {
		t.Fatal(err)
	}
	if _, err = rtlsim.NewClock(d, net); errors.Cause(err) != rtlsim.ErrDuplicateClock {
		t.Fatalf("expected ErrDuplicateClock, got %v", err)
	}
	if _, err = rtlsim.NewClock(d, hl.BitFunc(func() bool { return true })); err == nil {
		t.Fatal("expected error for non comparable clock net")
	}
	if _, err = rtlsim.NewClock(d, nil); err == nil {
		t.Fatal("expected error for nil clock net")
	}
	if _, err = rtlsim.NewClock(rtlsim.NewDesign(), net); errors.Cause(err) != rtlsim.ErrForeignItem {
		t.Fatalf("expected ErrForeignItem, got %v", err)
	}
}

func TestClock_unresolved(t *testing.T) {
	d := rtlsim.NewDesign()
	clk, err := rtlsim.NewClock(d, hl.True)
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	newProbe(t, d, "lost", nil, &log)
	if err = d.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err = clk.Edge(); errors.Cause(err) != rtlsim.ErrUnresolvedClock {
		t.Fatalf("expected ErrUnresolvedClock, got %v", err)
	}
}

func TestClockConnector(t *testing.T) {
	d := rtlsim.NewDesign()
	clk, err := rtlsim.NewClock(d, hl.True)
	if err != nil {
		t.Fatal(err)
	}
	c1, err := rtlsim.NewClockConnector(d)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := rtlsim.NewClockConnector(d)
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	p := newProbe(t, d, "p", c2, &log)

	if err = c2.Connect(c1); err != nil {
		t.Fatal(err)
	}
	if err = c1.Connect(c2); err == nil {
		t.Fatal("expected loop error")
	}
	if c1.Clock() != nil {
		t.Fatal("unconnected connector resolved to a clock")
	}
	if err = c1.Connect(clk); err != nil {
		t.Fatal(err)
	}
	if c2.Connected() != rtlsim.ClockSignal(c1) || c2.Clock() != clk {
		t.Fatal("connector chain not resolved")
	}
	if err = d.Prepare(); err != nil {
		t.Fatal(err)
	}
	ms, err := clk.Members()
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0] != rtlsim.ClockedItem(p) {
		t.Fatalf("unexpected members %v", ms)
	}
}

func TestClockConnector_unconnected(t *testing.T) {
	d := rtlsim.NewDesign()
	c, err := rtlsim.NewClockConnector(d)
	if err != nil {
		t.Fatal(err)
	}
	c.SetName("clk_in")
	err = d.Prepare()
	verr, ok := err.(*rtlsim.ValidationError)
	if !ok || len(verr.Errors) != 1 {
		t.Fatalf("expected a single validation error, got %v", err)
	}
	if errors.Cause(verr.Errors[0]) != rtlsim.ErrUnresolvedClock {
		t.Fatalf("expected ErrUnresolvedClock, got %v", verr.Errors[0])
	}
}
