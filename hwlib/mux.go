// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

type mux struct {
	sel, a, b rtlsim.BitSignal
}

func (m *mux) Value() bool {
	if m.sel.Value() {
		return m.b.Value()
	}
	return m.a.Value()
}

// Mux returns a multiplexer.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(sel, a, b rtlsim.BitSignal) rtlsim.BitSignal {
	checkBits(sel, a, b)
	return &mux{sel, a, b}
}

type muxN struct {
	sel  rtlsim.BitSignal
	a, b VectorSignal
}

func (m *muxN) Width() int { return m.a.Width() }

func (m *muxN) Value() Vector {
	if m.sel.Value() {
		return m.b.Value()
	}
	return m.a.Value()
}

// MuxVector returns a vector multiplexer. a and b must have the same width.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func MuxVector(sel rtlsim.BitSignal, a, b VectorSignal) VectorSignal {
	checkBits(sel)
	checkSameWidth(a, b)
	return &muxN{sel, a, b}
}

type index struct {
	v VectorSignal
	i int
}

func (x *index) Value() bool { return x.v.Value().Bit(x.i) }

// Index returns bit i of v.
//
func Index(v VectorSignal, i int) rtlsim.BitSignal {
	checkVectors(v)
	if i < 0 || i >= v.Width() {
		panic(errors.Errorf("bit index %d out of range for width %d", i, v.Width()))
	}
	return &index{v, i}
}
