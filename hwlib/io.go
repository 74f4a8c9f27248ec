// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
)

// VectorSignal is the read-only view of a vector signal.
//
type VectorSignal interface {
	Width() int
	Value() Vector
}

// BitConstant is a constant 1 bit signal.
//
type BitConstant bool

// Constant signals.
//
const (
	False = BitConstant(false)
	True  = BitConstant(true)
)

// Value implements rtlsim.BitSignal.
//
func (c BitConstant) Value() bool { return bool(c) }

// VectorConstant is a constant vector signal.
//
type VectorConstant Vector

// ConstVector returns a constant vector signal.
//
func ConstVector(width int, v uint64) VectorConstant {
	return VectorConstant(VectorOf(width, v))
}

// Width implements VectorSignal.
//
func (c VectorConstant) Width() int { return Vector(c).Width() }

// Value implements VectorSignal.
//
func (c VectorConstant) Value() Vector { return Vector(c) }

// BitFunc is a 1 bit signal computed by a function.
//
//	Function: out = f()
//
type BitFunc func() bool

// Value implements rtlsim.BitSignal.
//
func (f BitFunc) Value() bool { return f() }

type vectorFunc struct {
	width int
	f     func() uint64
}

func (v *vectorFunc) Width() int    { return v.width }
func (v *vectorFunc) Value() Vector { return VectorOf(v.width, v.f()) }

// VectorFunc returns a vector signal computed by a function. Bits beyond width
// are dropped.
//
//	Function: out = f()
//
func VectorFunc(width int, f func() uint64) VectorSignal {
	VectorOf(width, 0) // check width
	return &vectorFunc{width, f}
}

// A SettableBit is a 1 bit signal set by user code, typically from a
// scheduled action between clock edges.
//
type SettableBit struct {
	rtlsim.ItemBase
	v bool
}

// NewSettableBit returns a new SettableBit with the given initial value.
//
func NewSettableBit(d *rtlsim.Design, v bool) (*SettableBit, error) {
	s := &SettableBit{v: v}
	return s, d.Add(s)
}

// Value implements rtlsim.BitSignal.
//
func (s *SettableBit) Value() bool { return s.v }

// Set sets the signal value.
//
func (s *SettableBit) Set(v bool) { s.v = v }

// A SettableVector is a vector signal set by user code.
//
type SettableVector struct {
	rtlsim.ItemBase
	v Vector
}

// NewSettableVector returns a new SettableVector with the given initial value.
//
func NewSettableVector(d *rtlsim.Design, width int, v uint64) (*SettableVector, error) {
	s := &SettableVector{v: VectorOf(width, v)}
	return s, d.Add(s)
}

// Width implements VectorSignal.
//
func (s *SettableVector) Width() int { return s.v.Width() }

// Value implements VectorSignal.
//
func (s *SettableVector) Value() Vector { return s.v }

// Set sets the signal value. Bits beyond the signal width are dropped.
//
func (s *SettableVector) Set(v uint64) { s.v = VectorOf(s.v.Width(), v) }
