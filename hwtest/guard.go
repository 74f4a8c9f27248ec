// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/rtlsim"
	"github.com/db47h/rtlsim/hwlib"
)

type bitGuard struct {
	t    testing.TB
	clk  *rtlsim.Clock
	name string
	in   rtlsim.BitSignal
}

func (g *bitGuard) Value() bool {
	if g.clk.Phase() == rtlsim.PhaseUpdate {
		g.t.Errorf("%s read during update phase of clock %s", g.name, g.clk.Name())
	}
	return g.in.Value()
}

// Guard wraps a signal so that any read during the update phase of clk fails
// the test. Clocked items must only read signals while computing their next
// state.
//
func Guard(t testing.TB, clk *rtlsim.Clock, name string, in rtlsim.BitSignal) rtlsim.BitSignal {
	return &bitGuard{t, clk, name, in}
}

type vectorGuard struct {
	t    testing.TB
	clk  *rtlsim.Clock
	name string
	in   hwlib.VectorSignal
}

func (g *vectorGuard) Width() int { return g.in.Width() }

func (g *vectorGuard) Value() hwlib.Vector {
	if g.clk.Phase() == rtlsim.PhaseUpdate {
		g.t.Errorf("%s read during update phase of clock %s", g.name, g.clk.Name())
	}
	return g.in.Value()
}

// GuardVector is the vector version of Guard.
//
func GuardVector(t testing.TB, clk *rtlsim.Clock, name string, in hwlib.VectorSignal) hwlib.VectorSignal {
	return &vectorGuard{t, clk, name, in}
}
