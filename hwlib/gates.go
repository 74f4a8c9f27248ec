// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of signals and clocked items for rtlsim.
//
// Combinational parts (gates, muxes, adders) are plain values computing their
// output from their inputs each time they are read. They panic when given
// invalid inputs. Clocked parts (registers, samplers, memory ports) are
// rtlsim items: their constructors register them with a design and return an
// error.
//
package hwlib

import (
	"github.com/db47h/rtlsim"
)

func checkBits(in ...rtlsim.BitSignal) {
	for _, s := range in {
		if s == nil {
			panic("nil input signal")
		}
	}
}

type not struct {
	in rtlsim.BitSignal
}

func (n *not) Value() bool { return !n.in.Value() }

// Not returns a NOT gate.
//
//	Function: out = !in
//
func Not(in rtlsim.BitSignal) rtlsim.BitSignal {
	checkBits(in)
	return &not{in}
}

// other gates
type gate struct {
	a, b rtlsim.BitSignal
	fn   func(a, b bool) bool
}

func (g *gate) Value() bool { return g.fn(g.a.Value(), g.b.Value()) }

func newGate(fn func(a, b bool) bool) func(a, b rtlsim.BitSignal) rtlsim.BitSignal {
	return func(a, b rtlsim.BitSignal) rtlsim.BitSignal {
		checkBits(a, b)
		return &gate{a, b, fn}
	}
}

var (
	and  = newGate(func(a, b bool) bool { return a && b })
	nand = newGate(func(a, b bool) bool { return !(a && b) })
	or   = newGate(func(a, b bool) bool { return a || b })
	nor  = newGate(func(a, b bool) bool { return !(a || b) })
	xor  = newGate(func(a, b bool) bool { return a != b })
	xnor = newGate(func(a, b bool) bool { return a == b })
)

// And returns a AND gate.
//
//	Function: out = a && b
//
func And(a, b rtlsim.BitSignal) rtlsim.BitSignal { return and(a, b) }

// Nand returns a NAND gate.
//
//	Function: out = !(a && b)
//
func Nand(a, b rtlsim.BitSignal) rtlsim.BitSignal { return nand(a, b) }

// Or returns a OR gate.
//
//	Function: out = a || b
//
func Or(a, b rtlsim.BitSignal) rtlsim.BitSignal { return or(a, b) }

// Nor returns a NOR gate.
//
//	Function: out = !(a || b)
//
func Nor(a, b rtlsim.BitSignal) rtlsim.BitSignal { return nor(a, b) }

// Xor returns a XOR gate.
//
//	Function: out = a != b
//
func Xor(a, b rtlsim.BitSignal) rtlsim.BitSignal { return xor(a, b) }

// Xnor returns a XNOR gate.
//
//	Function: out = a == b
//
func Xnor(a, b rtlsim.BitSignal) rtlsim.BitSignal { return xnor(a, b) }
