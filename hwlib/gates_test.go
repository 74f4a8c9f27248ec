// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
	"github.com/db47h/rtlsim/hwtest"
)

// all gates rebuilt from NAND.
func TestNandCompositions(t *testing.T) {
	d := rtlsim.NewDesign()
	in := newInputs(t, d, 2)
	a, b := in[0], in[1]
	not := func(x rtlsim.BitSignal) rtlsim.BitSignal { return hl.Nand(x, x) }
	and := func(x, y rtlsim.BitSignal) rtlsim.BitSignal { return not(hl.Nand(x, y)) }
	or := func(x, y rtlsim.BitSignal) rtlsim.BitSignal { return hl.Nand(not(x), not(y)) }
	xor := func(x, y rtlsim.BitSignal) rtlsim.BitSignal {
		n := hl.Nand(x, y)
		return hl.Nand(hl.Nand(x, n), hl.Nand(y, n))
	}

	data := []struct {
		name string
		a, b rtlsim.BitSignal
	}{
		{"Not", hl.Not(a), not(a)},
		{"And", hl.And(a, b), and(a, b)},
		{"Or", hl.Or(a, b), or(a, b)},
		{"Nor", hl.Nor(a, b), not(or(a, b))},
		{"Xor", hl.Xor(a, b), xor(a, b)},
		{"Xnor", hl.Xnor(a, b), not(xor(a, b))},
	}
	for _, td := range data {
		t.Run(td.name, func(t *testing.T) {
			hwtest.CompareBits(t, in, td.a, td.b)
		})
	}
}

func TestMux(t *testing.T) {
	d := rtlsim.NewDesign()
	in := newInputs(t, d, 3)
	sel, a, b := in[0], in[1], in[2]
	ref := hl.Or(hl.And(hl.Not(sel), a), hl.And(sel, b))
	hwtest.CompareBits(t, in, hl.Mux(sel, a, b), ref)
}
